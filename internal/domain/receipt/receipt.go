package receipt

import (
	"context"
	"time"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// Sign marca o recibo como assinado. Assinatura não é refeita.
func Sign(r *models.Receipt, now time.Time) error {
	if r.Signed {
		return httperr.ErrBusiness("invalid_state")
	}
	r.Signed = true
	r.SignedAt = &now
	return nil
}

type Repository interface {
	GetPayment(ctx context.Context, id uint) (*models.Payment, error)
	GetStaff(ctx context.Context, id uint) (*models.StaffMember, error)

	CreateReceipt(ctx context.Context, r *models.Receipt) error
	GetReceipt(ctx context.Context, id uint) (*models.Receipt, error)
	GetReceiptByPayment(ctx context.Context, paymentID uint) (*models.Receipt, error)
	UpdateReceipt(ctx context.Context, r *models.Receipt) error
	ListReceipts(ctx context.Context, scope access.Scope) ([]models.Receipt, error)
}

type Issued struct {
	ActorID uint
	Receipt *models.Receipt
	Payment *models.Payment
	Staff   *models.StaffMember
}
