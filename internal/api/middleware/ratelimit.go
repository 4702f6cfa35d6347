package middleware

import (
	"net/http"
	"strconv"

	"github.com/most-gh/mddroner-booking/internal/api/handlers"
)

const msgTooManyRequests = "提交過於頻繁，請稍後再試。"

// RateLimit ограничивает частоту запросов с одного IP
// При недоступности лимитера запрос пропускается
func RateLimit(limiter Limiter, proxies *TrustedProxies, m RateLimitMetrics, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, proxies)

			decision, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				log.Error("request_id=%s rate limiter failed, letting request through: %v", GetRequestID(r.Context()), err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				m.IncRateLimited()
				log.Warn("request_id=%s rate limited ip=%s retry_after=%s",
					GetRequestID(r.Context()), ip, decision.RetryAfter)
				handlers.RespondTooManyRequests(w, msgTooManyRequests, decision.RetryAfter)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
