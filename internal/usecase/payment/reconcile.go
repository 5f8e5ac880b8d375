package payment

import (
	"context"
	"errors"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/gateway"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

type ReconcileResult struct {
	Payment       *models.Payment `json:"payment"`
	GatewayStatus string          `json:"gateway_status"`
	Changed       bool            `json:"changed"`
}

// ReconcilePayment confere a ProofRef no Mercado Pago e marca como pago
// um pagamento pendente aprovado no gateway.
type ReconcilePayment struct {
	repo    domainpayment.Repository
	gateway gateway.Lookup
	audit   audit.Sink
	paid    []hooks.Hook[domainpayment.Registered]
}

func NewReconcilePayment(
	repo domainpayment.Repository,
	lookup gateway.Lookup,
	auditSink audit.Sink,
	paid []hooks.Hook[domainpayment.Registered],
) *ReconcilePayment {
	return &ReconcilePayment{repo: repo, gateway: lookup, audit: auditSink, paid: paid}
}

func (uc *ReconcilePayment) Execute(ctx context.Context, actor access.Actor, id uint) (*ReconcileResult, error) {
	p, err := loadOwned(ctx, uc.repo, actor, id)
	if err != nil {
		return nil, err
	}
	if p.ProofRef == "" {
		return nil, httperr.ErrValidation("proof_ref_missing")
	}

	status, err := uc.gateway.PaymentStatus(ctx, p.ProofRef)
	switch {
	case errors.Is(err, gateway.ErrUnavailable):
		return nil, httperr.ErrBusiness("gateway_unavailable")
	case errors.Is(err, gateway.ErrInvalidRef):
		return nil, httperr.ErrValidation("invalid_gateway_ref")
	case err != nil:
		return nil, httperr.ErrBusiness("gateway_error")
	}

	result := &ReconcileResult{Payment: p, GatewayStatus: status}

	if status != gateway.StatusApproved || domainpayment.CanMarkPaid(domainpayment.Status(p.Status)) != nil {
		return result, nil
	}

	p.Status = string(domainpayment.StatusPaid)
	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}
	result.Changed = true

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "payment_reconciled",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"gateway_status": status, "proof_ref": p.ProofRef},
	})

	hooks.Run(ctx, uc.paid, domainpayment.Registered{
		ActorID:    actor.ID,
		Payment:    p,
		Staff:      lookupStaff(ctx, uc.repo, actor.Scope(), p.StaffID),
		NotifyPaid: true,
	}, map[string]any{"payment_id": p.ID})

	return result, nil
}
