package payment

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetStaff(ctx context.Context, id uint) (*models.StaffMember, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// -------- Payment --------
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id uint) (*models.Payment, error)
	UpdatePayment(ctx context.Context, p *models.Payment) error
	ListPayments(ctx context.Context, scope access.Scope) ([]models.Payment, error)
	ListPaymentsForStaff(
		ctx context.Context,
		scope access.Scope,
		staffID uint,
	) ([]models.Payment, error)

	// -------- Proof files --------
	CreateProofFile(ctx context.Context, f *models.ProofFile) error
	ListProofFiles(ctx context.Context, paymentID uint) ([]models.ProofFile, error)
}
