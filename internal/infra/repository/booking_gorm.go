package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *GormStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Omit("Staff", "Specialty").Create(b).Error
}

func (r *GormStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Specialty").
		First(&b, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *GormStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Omit("Staff", "Specialty").Save(b).Error
}

func (r *GormStore) DeleteBooking(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Booking{}, id))
}

func (r *GormStore) ListBookings(ctx context.Context, scope access.Scope) ([]models.Booking, error) {
	var out []models.Booking
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Staff").
		Preload("Specialty").
		Order("start_date DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) ListBookingsForStaff(
	ctx context.Context,
	scope access.Scope,
	staffID uint,
) ([]models.Booking, error) {

	var out []models.Booking
	err := scoped(r.db.WithContext(ctx), scope).
		Preload("Specialty").
		Where("staff_id = ?", staffID).
		Order("start_date DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
