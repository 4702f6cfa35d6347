package authz

import (
	"errors"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// ErrForbidden возвращается, когда у вызывающего нет роли admin
var ErrForbidden = errors.New("authz: forbidden")

// RequireAdmin единственная проверка прав для привилегированных операций
// nil identity (аноним) и любая роль, кроме admin, получают ErrForbidden
func RequireAdmin(identity *domain.Identity) error {
	if !identity.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
