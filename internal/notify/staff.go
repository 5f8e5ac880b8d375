package notify

import (
	"context"

	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/models"
)

// StaffCreated é o evento de cadastro de diarista.
type StaffCreated struct {
	ActorID uint
	Staff   *models.StaffMember
}

func (n *Notifier) StaffHooks() []hooks.Hook[StaffCreated] {
	return []hooks.Hook[StaffCreated]{
		{Name: "admin_notification", Fn: n.StaffRecord},
	}
}

func (n *Notifier) StaffRecord(ctx context.Context, ev StaffCreated) error {
	return n.record(ctx, models.Notification{
		UserID:      ev.ActorID,
		Kind:        models.NotificationStaffCreated,
		Title:       "Nova diarista cadastrada",
		Description: ev.Staff.Name + " • " + ev.Staff.Phone,
		Icon:        "user-plus",
		Color:       "teal",
		EntityID:    ptr(ev.Staff.ID),
		EntityTable: "staff_members",
	}, nil)
}

// SuspiciousAccess registra tentativas de login bloqueadas para o dono da conta.
func (n *Notifier) SuspiciousAccess(ctx context.Context, userID uint, ip string) error {
	return n.record(ctx, models.Notification{
		UserID:      userID,
		Kind:        models.NotificationSuspiciousAccess,
		Title:       "Acesso suspeito",
		Description: "Muitas tentativas de login a partir de " + ip,
		Icon:        "shield-alert",
		Color:       "red",
		EntityID:    ptr(userID),
		EntityTable: "users",
	}, nil)
}
