package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Rating
// --------------------------------------------------

func (r *GormStore) CreateRating(ctx context.Context, rt *models.Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *GormStore) GetRating(ctx context.Context, id uint) (*models.Rating, error) {
	var rt models.Rating
	if err := r.db.WithContext(ctx).First(&rt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rt, nil
}

func (r *GormStore) UpdateRating(ctx context.Context, rt *models.Rating) error {
	return r.db.WithContext(ctx).Save(rt).Error
}

func (r *GormStore) ListRatingsForStaff(ctx context.Context, staffID uint) ([]models.Rating, error) {
	var out []models.Rating
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) AverageScore(ctx context.Context, staffID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS total").
		Where("staff_id = ?", staffID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Total, nil
}
