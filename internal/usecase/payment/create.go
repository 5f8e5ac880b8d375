package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePaymentInput struct {
	Actor access.Actor

	StaffID   uint
	BookingID *uint

	Amount int64
	PaidAt string // YYYY-MM-DD
	Method string
	Status *string

	Description string
	ProofRef    string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePayment struct {
	repo  domainpayment.Repository
	audit audit.Sink
	hooks []hooks.Hook[domainpayment.Registered]
	tz    string

	// requirePaid: só status "paid" explícito dispara os avisos de pagamento.
	requirePaid bool
}

func NewCreatePayment(
	repo domainpayment.Repository,
	auditSink audit.Sink,
	tz string,
	requirePaid bool,
	notify []hooks.Hook[domainpayment.Registered],
) *CreatePayment {
	uc := &CreatePayment{
		repo:        repo,
		audit:       auditSink,
		tz:          tz,
		requirePaid: requirePaid,
	}
	uc.hooks = append(append([]hooks.Hook[domainpayment.Registered]{}, notify...), hooks.Hook[domainpayment.Registered]{
		Name: "audit",
		Fn:   uc.auditCreated,
	})
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePayment) Execute(
	ctx context.Context,
	in CreatePaymentInput,
) (*models.Payment, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if in.Amount < 0 {
		return nil, httperr.ErrValidation("invalid_amount")
	}

	method := domainpayment.Method(strings.TrimSpace(in.Method))
	if !method.Valid() {
		return nil, httperr.ErrValidation("invalid_method")
	}

	status := domainpayment.StatusPending
	if in.Status != nil {
		status = domainpayment.Status(strings.TrimSpace(*in.Status))
		if !status.Valid() {
			return nil, httperr.ErrValidation("invalid_status")
		}
	}

	paidAt, err := timezone.ParseDate(uc.tz, strings.TrimSpace(in.PaidAt))
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date")
	}

	scope := in.Actor.Scope()

	if in.BookingID != nil {
		b, err := uc.repo.GetBooking(ctx, *in.BookingID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrValidation("booking_not_found")
		}
		if err != nil {
			return nil, err
		}
		if !scope.Owns(b.UserID) {
			return nil, httperr.ErrForbidden("forbidden")
		}
	}

	// diarista desconhecida não bloqueia; de outro usuário, sim
	staff, err := resolveStaff(ctx, uc.repo, scope, in.StaffID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Gravação
	// --------------------------------------------------
	p := &models.Payment{
		UserID:      in.Actor.ID,
		StaffID:     in.StaffID,
		BookingID:   in.BookingID,
		Amount:      in.Amount,
		PaidAt:      paidAt,
		Method:      string(method),
		Status:      string(status),
		Description: strings.TrimSpace(in.Description),
		ProofRef:    strings.TrimSpace(in.ProofRef),
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Hooks pós-gravação
	// --------------------------------------------------
	hooks.Run(ctx, uc.hooks, domainpayment.Registered{
		ActorID:    in.Actor.ID,
		Payment:    p,
		Staff:      staff,
		NotifyPaid: uc.notifyPaid(in.Status),
	}, map[string]any{"payment_id": p.ID})

	return p, nil
}

// notifyPaid: sem status informado o pagamento é gravado como pendente, mas
// ainda avisa como pago, a menos que requirePaid esteja ligado.
func (uc *CreatePayment) notifyPaid(requested *string) bool {
	if requested == nil {
		return !uc.requirePaid
	}
	return domainpayment.Status(strings.TrimSpace(*requested)) == domainpayment.StatusPaid
}

func (uc *CreatePayment) auditCreated(_ context.Context, ev domainpayment.Registered) error {
	uc.audit.Dispatch(audit.Event{
		UserID:      &ev.ActorID,
		Action:      "payment_created",
		Entity:      "payment",
		EntityID:    &ev.Payment.ID,
		Description: "Pagamento registrado",
		Metadata: map[string]any{
			"staff_id": ev.Payment.StaffID,
			"amount":   ev.Payment.Amount,
			"method":   ev.Payment.Method,
			"status":   ev.Payment.Status,
		},
	})
	return nil
}
