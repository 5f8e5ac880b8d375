package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *GormStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormStore) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormStore) UpdatePayment(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormStore) ListPayments(ctx context.Context, scope access.Scope) ([]models.Payment, error) {
	var out []models.Payment
	err := scoped(r.db.WithContext(ctx), scope).
		Order("paid_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) ListPaymentsForStaff(
	ctx context.Context,
	scope access.Scope,
	staffID uint,
) ([]models.Payment, error) {

	var out []models.Payment
	err := scoped(r.db.WithContext(ctx), scope).
		Where("staff_id = ?", staffID).
		Order("paid_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Proof files
// --------------------------------------------------

func (r *GormStore) CreateProofFile(ctx context.Context, f *models.ProofFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *GormStore) ListProofFiles(ctx context.Context, paymentID uint) ([]models.ProofFile, error) {
	var out []models.ProofFile
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
