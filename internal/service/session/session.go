package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// DefaultCookieName имя cookie сессии по умолчанию
const DefaultCookieName = "mddroner_session"

var (
	// ErrNoToken возвращается, когда в запросе нет токена сессии
	ErrNoToken = errors.New("session: token not provided")

	// ErrInvalidToken возвращается для подделанного, просроченного или битого токена
	ErrInvalidToken = errors.New("session: invalid token")
)

// Claims содержимое токена сессии
type Claims struct {
	OpenID string `json:"openId,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager проверяет токены сессии (HS256), выпущенные сервисом авторизации
type Manager struct {
	secret       []byte
	cookieName   string
	secureCookie bool
}

// NewManager создает менеджер сессий
func NewManager(secret, cookieName string, secureCookie bool) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Manager{
		secret:       []byte(secret),
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// CookieName имя cookie сессии
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Parse проверяет подпись и срок действия токена и возвращает identity
func (m *Manager) Parse(raw string) (*domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, claims.Subject)
	}

	return &domain.Identity{
		ID:     id,
		OpenID: claims.OpenID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   domain.ParseRole(claims.Role),
	}, nil
}

// Issue подписывает токен для identity
// Выпуск сессий - задача внешнего сервиса авторизации, здесь метод нужен для тестов и локальной отладки
func (m *Manager) Issue(identity *domain.Identity, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		OpenID: identity.OpenID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// FromRequest извлекает токен из cookie сессии или заголовка Authorization: Bearer
func (m *Manager) FromRequest(r *http.Request) (*domain.Identity, error) {
	raw := ""
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		raw = cookie.Value
	}
	if raw == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if raw == "" {
		return nil, ErrNoToken
	}
	return m.Parse(raw)
}

// ClearCookie удаляет cookie сессии у клиента
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
