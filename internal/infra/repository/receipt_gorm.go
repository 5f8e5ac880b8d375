package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Receipt
// --------------------------------------------------

func (r *GormStore) CreateReceipt(ctx context.Context, rc *models.Receipt) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *GormStore) GetReceipt(ctx context.Context, id uint) (*models.Receipt, error) {
	var rc models.Receipt
	if err := r.db.WithContext(ctx).First(&rc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *GormStore) GetReceiptByPayment(ctx context.Context, paymentID uint) (*models.Receipt, error) {
	var rc models.Receipt
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&rc).Error; err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *GormStore) UpdateReceipt(ctx context.Context, rc *models.Receipt) error {
	return r.db.WithContext(ctx).Save(rc).Error
}

func (r *GormStore) ListReceipts(ctx context.Context, scope access.Scope) ([]models.Receipt, error) {
	var out []models.Receipt
	if err := scoped(r.db.WithContext(ctx), scope).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
