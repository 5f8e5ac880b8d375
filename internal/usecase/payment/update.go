package payment

import (
	"context"
	"strings"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/timezone"
)

type UpdatePaymentInput struct {
	Actor access.Actor
	ID    uint

	Amount      *int64
	PaidAt      *string
	Method      *string
	Status      *string
	Description *string
	ProofRef    *string
}

type UpdatePayment struct {
	repo  domainpayment.Repository
	audit audit.Sink
	paid  []hooks.Hook[domainpayment.Registered]
	tz    string
}

// paid roda quando o status muda para "paid".
func NewUpdatePayment(
	repo domainpayment.Repository,
	auditSink audit.Sink,
	tz string,
	paid []hooks.Hook[domainpayment.Registered],
) *UpdatePayment {
	return &UpdatePayment{repo: repo, audit: auditSink, paid: paid, tz: tz}
}

func (uc *UpdatePayment) Execute(ctx context.Context, in UpdatePaymentInput) (*models.Payment, error) {
	p, err := loadOwned(ctx, uc.repo, in.Actor, in.ID)
	if err != nil {
		return nil, err
	}

	previous := domainpayment.Status(p.Status)

	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, httperr.ErrValidation("invalid_amount")
		}
		p.Amount = *in.Amount
	}
	if in.PaidAt != nil {
		t, err := timezone.ParseDate(uc.tz, strings.TrimSpace(*in.PaidAt))
		if err != nil {
			return nil, httperr.ErrValidation("invalid_date")
		}
		p.PaidAt = t
	}
	if in.Method != nil {
		m := domainpayment.Method(strings.TrimSpace(*in.Method))
		if !m.Valid() {
			return nil, httperr.ErrValidation("invalid_method")
		}
		p.Method = string(m)
	}
	if in.Status != nil {
		s := domainpayment.Status(strings.TrimSpace(*in.Status))
		if !s.Valid() {
			return nil, httperr.ErrValidation("invalid_status")
		}
		if s == domainpayment.StatusPaid && previous != domainpayment.StatusPaid {
			if err := domainpayment.CanMarkPaid(previous); err != nil {
				return nil, err
			}
		}
		p.Status = string(s)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.ProofRef != nil {
		p.ProofRef = strings.TrimSpace(*in.ProofRef)
	}

	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.ID,
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"previous_status": previous, "status": p.Status},
	})

	if previous != domainpayment.StatusPaid && domainpayment.Status(p.Status) == domainpayment.StatusPaid {
		hooks.Run(ctx, uc.paid, domainpayment.Registered{
			ActorID:    in.Actor.ID,
			Payment:    p,
			Staff:      lookupStaff(ctx, uc.repo, in.Actor.Scope(), p.StaffID),
			NotifyPaid: true,
		}, map[string]any{"payment_id": p.ID})
	}

	return p, nil
}
