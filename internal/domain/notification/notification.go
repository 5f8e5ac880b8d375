package notification

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// Repository guarda as notificações do painel.
type Repository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	GetNotification(ctx context.Context, id uint) (*models.Notification, error)
	ListNotifications(ctx context.Context, scope access.Scope, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id uint) error
	CountUnreadNotifications(ctx context.Context, scope access.Scope) (int64, error)
}

type MessageLogFilter struct {
	BookingID *uint
	PaymentID *uint
	Status    string
	Limit     int
}

// MessageLogRepository guarda cada tentativa de envio de WhatsApp.
type MessageLogRepository interface {
	CreateMessageLog(ctx context.Context, m *models.MessageLog) error
	ListMessageLogs(ctx context.Context, f MessageLogFilter) ([]models.MessageLog, error)
}
