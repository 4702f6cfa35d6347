package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// TrustedProxies адреса обратных прокси, которым разрешено передавать IP клиента в заголовках
type TrustedProxies struct {
	nets []*net.IPNet
}

// ParseTrustedProxies разбирает список IP и CIDR из конфигурации
func ParseTrustedProxies(entries []string) (*TrustedProxies, error) {
	p := &TrustedProxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 8 * net.IPv4len
			if ip.To4() == nil {
				bits = 8 * net.IPv6len
			}
			entry = fmt.Sprintf("%s/%d", entry, bits)
		}

		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %v", entry, err)
		}
		p.nets = append(p.nets, ipNet)
	}
	return p, nil
}

// Contains входит ли адрес в список; nil список пуст
func (p *TrustedProxies) Contains(ip net.IP) bool {
	if p == nil || ip == nil {
		return false
	}
	for _, n := range p.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP адрес клиента для лимитов
// X-Forwarded-For и X-Real-IP учитываются, только если соединение пришло от доверенного прокси.
// В X-Forwarded-For берется ближайший к нам адрес, который не является доверенным прокси
func ClientIP(r *http.Request, proxies *TrustedProxies) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		remote = host
	}

	if !proxies.Contains(net.ParseIP(remote)) {
		return remote
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(hops[i]))
			if ip == nil {
				break
			}
			if !proxies.Contains(ip) {
				return ip.String()
			}
		}
	}

	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}

	return remote
}
