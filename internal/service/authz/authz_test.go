package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

func TestRequireAdmin(t *testing.T) {
	assert.ErrorIs(t, RequireAdmin(nil), ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(&domain.Identity{ID: 2, Role: domain.RoleUser}), ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(&domain.Identity{ID: 3, Role: domain.Role("")}), ErrForbidden)
	assert.NoError(t, RequireAdmin(&domain.Identity{ID: 1, Role: domain.RoleAdmin}))
}
