package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

func TestCanListAll(t *testing.T) {
	assert.True(t, CanListAll(models.RoleAdmin))
	assert.False(t, CanListAll(models.RoleUser))
	assert.False(t, CanListAll(""))
}

func TestScopeOwns(t *testing.T) {
	user := ScopeFor(7, models.RoleUser)
	assert.True(t, user.Owns(7))
	assert.False(t, user.Owns(8))

	admin := ScopeFor(1, models.RoleAdmin)
	assert.True(t, admin.Owns(8))
}

func TestCanChangeRole(t *testing.T) {
	err := CanChangeRole(2, models.RoleUser, 3, models.RoleAdmin)
	assert.True(t, httperr.IsBusiness(err, "admin_required"))

	err = CanChangeRole(1, models.RoleAdmin, 3, "root")
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))

	err = CanChangeRole(1, models.RoleAdmin, 1, models.RoleUser)
	assert.True(t, httperr.IsBusiness(err, "cannot_demote_self"))

	assert.NoError(t, CanChangeRole(1, models.RoleAdmin, 3, models.RoleAdmin))
	assert.NoError(t, CanChangeRole(1, models.RoleAdmin, 3, models.RoleUser))
}

func TestActorScope(t *testing.T) {
	a := Actor{ID: 4, Role: models.RoleUser}
	assert.Equal(t, Scope{UserID: 4}, a.Scope())
	assert.False(t, a.IsAdmin())

	admin := Actor{ID: 1, Role: models.RoleAdmin}
	assert.True(t, admin.Scope().All)
	assert.True(t, admin.IsAdmin())
}
