package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/session"
)

type identityKey struct{}

// Identity кладет identity из сессии в контекст
// Без сессии или с невалидным токеном запрос идет дальше анонимно: права проверяет сервис
func Identity(sessions SessionResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.FromRequest(r)
			if err != nil {
				if !errors.Is(err, session.ErrNoToken) {
					log.Warn("request_id=%s invalid session: %v", GetRequestID(r.Context()), err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity возвращает identity вызывающего или nil для анонима
func GetIdentity(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return identity
}

// WithIdentity кладет identity в контекст (для тестов хендлеров)
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}
