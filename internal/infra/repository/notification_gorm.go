package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Notification
// --------------------------------------------------

func (r *GormStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormStore) GetNotification(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *GormStore) ListNotifications(
	ctx context.Context,
	scope access.Scope,
	unreadOnly bool,
) ([]models.Notification, error) {

	q := scoped(r.db.WithContext(ctx), scope)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var out []models.Notification
	if err := q.Order("created_at DESC, id DESC").Limit(200).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) MarkNotificationRead(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true))
}

func (r *GormStore) CountUnreadNotifications(ctx context.Context, scope access.Scope) (int64, error) {
	var n int64
	err := scoped(r.db.WithContext(ctx).Model(&models.Notification{}), scope).
		Where("read = ?", false).
		Count(&n).Error
	return n, err
}

// --------------------------------------------------
// Message log (WhatsApp)
// --------------------------------------------------

func (r *GormStore) CreateMessageLog(ctx context.Context, m *models.MessageLog) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *GormStore) ListMessageLogs(
	ctx context.Context,
	f notification.MessageLogFilter,
) ([]models.MessageLog, error) {

	q := r.db.WithContext(ctx)
	if f.BookingID != nil {
		q = q.Where("booking_id = ?", *f.BookingID)
	}
	if f.PaymentID != nil {
		q = q.Where("payment_id = ?", *f.PaymentID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var out []models.MessageLog
	if err := q.Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
