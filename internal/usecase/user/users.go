package user

import (
	"context"
	"errors"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	domainuser "github.com/alanfo18/stcd/internal/domain/user"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

type Users struct {
	repo  domainuser.Repository
	audit audit.Sink
}

func NewUsers(repo domainuser.Repository, auditSink audit.Sink) *Users {
	return &Users{repo: repo, audit: auditSink}
}

func (uc *Users) Me(ctx context.Context, actor access.Actor) (*models.User, error) {
	return uc.get(ctx, actor.ID)
}

func (uc *Users) List(ctx context.Context, actor access.Actor) ([]models.User, error) {
	if err := access.RequireAdmin(actor.Role); err != nil {
		return nil, err
	}
	return uc.repo.ListUsers(ctx)
}

// ChangeRole promove ou rebaixa um usuário. Só admins, e nunca a si mesmo.
func (uc *Users) ChangeRole(ctx context.Context, actor access.Actor, targetID uint, role string) (*models.User, error) {
	if err := access.CanChangeRole(actor.ID, actor.Role, targetID, role); err != nil {
		return nil, err
	}

	u, err := uc.get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	previous := u.Role
	u.Role = role
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"from": previous, "to": role},
	})
	return u, nil
}

func (uc *Users) get(ctx context.Context, id uint) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return u, err
}
