package booking

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// Repository devolve domain.ErrNotFound quando o registro não existe.
type Repository interface {
	// -------- Lookups --------
	GetStaff(ctx context.Context, id uint) (*models.StaffMember, error)
	GetSpecialty(ctx context.Context, id uint) (*models.Specialty, error)

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error
	DeleteBooking(ctx context.Context, id uint) error

	ListBookings(ctx context.Context, scope access.Scope) ([]models.Booking, error)
	ListBookingsForStaff(
		ctx context.Context,
		scope access.Scope,
		staffID uint,
	) ([]models.Booking, error)
}
