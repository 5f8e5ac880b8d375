// Package access decide quais registros um usuário pode ver ou alterar.
package access

import (
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// Scope restringe consultas de listagem. All=true ignora o dono.
type Scope struct {
	UserID uint
	All    bool
}

// Actor é quem executa a operação.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) Scope() Scope {
	return ScopeFor(a.ID, a.Role)
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func CanListAll(role string) bool {
	return role == models.RoleAdmin
}

func ScopeFor(userID uint, role string) Scope {
	return Scope{UserID: userID, All: CanListAll(role)}
}

// Owns informa se o escopo enxerga um registro do dono informado.
func (s Scope) Owns(ownerID uint) bool {
	return s.All || s.UserID == ownerID
}

func RequireAdmin(role string) error {
	if role != models.RoleAdmin {
		return httperr.ErrForbidden("admin_required")
	}
	return nil
}

func ValidRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

// CanChangeRole aplica as regras de promoção/rebaixamento.
func CanChangeRole(actorID uint, actorRole string, targetID uint, newRole string) error {
	if err := RequireAdmin(actorRole); err != nil {
		return err
	}
	if !ValidRole(newRole) {
		return httperr.ErrValidation("invalid_role")
	}
	if actorID == targetID && newRole != models.RoleAdmin {
		return httperr.ErrBusiness("cannot_demote_self")
	}
	return nil
}
