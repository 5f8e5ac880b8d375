package rating

import (
	"context"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

const (
	MinScore = 1
	MaxScore = 5
)

func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return httperr.ErrValidation("invalid_score")
	}
	return nil
}

type Repository interface {
	GetStaff(ctx context.Context, id uint) (*models.StaffMember, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	CreateRating(ctx context.Context, r *models.Rating) error
	GetRating(ctx context.Context, id uint) (*models.Rating, error)
	UpdateRating(ctx context.Context, r *models.Rating) error
	ListRatingsForStaff(ctx context.Context, staffID uint) ([]models.Rating, error)

	// AverageScore devolve a média e a quantidade de avaliações.
	AverageScore(ctx context.Context, staffID uint) (float64, int64, error)
}

// Created é entregue aos hooks depois que a avaliação foi gravada.
type Created struct {
	ActorID uint
	Rating  *models.Rating
	Staff   *models.StaffMember
}
