package receipt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	domainreceipt "github.com/alanfo18/stcd/internal/domain/receipt"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// ======================================================
// ISSUE
// ======================================================

type IssueReceipt struct {
	repo  domainreceipt.Repository
	hooks []hooks.Hook[domainreceipt.Issued]
}

func NewIssueReceipt(
	repo domainreceipt.Repository,
	auditSink audit.Sink,
	notify []hooks.Hook[domainreceipt.Issued],
) *IssueReceipt {
	list := append([]hooks.Hook[domainreceipt.Issued]{}, notify...)
	list = append(list, hooks.Hook[domainreceipt.Issued]{
		Name: "audit",
		Fn: func(_ context.Context, ev domainreceipt.Issued) error {
			auditSink.Dispatch(audit.Event{
				UserID:   &ev.ActorID,
				Action:   "receipt_issued",
				Entity:   "receipt",
				EntityID: &ev.Receipt.ID,
				Metadata: map[string]any{"payment_id": ev.Payment.ID},
			})
			return nil
		},
	})
	return &IssueReceipt{repo: repo, hooks: list}
}

// Execute emite o recibo de um pagamento. Cada pagamento tem no máximo um recibo.
func (uc *IssueReceipt) Execute(
	ctx context.Context,
	actor access.Actor,
	paymentID uint,
	url string,
) (*models.Receipt, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.Scope().Owns(p.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	if _, err := uc.repo.GetReceiptByPayment(ctx, p.ID); err == nil {
		return nil, httperr.ErrConflict("already_issued")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	r := &models.Receipt{
		UserID:    actor.ID,
		PaymentID: p.ID,
		BookingID: p.BookingID,
		StaffID:   p.StaffID,
		URL:       strings.TrimSpace(url),
	}
	if err := uc.repo.CreateReceipt(ctx, r); err != nil {
		return nil, err
	}

	staff, err := uc.repo.GetStaff(ctx, p.StaffID)
	if err != nil {
		staff = nil
	}

	hooks.Run(ctx, uc.hooks, domainreceipt.Issued{
		ActorID: actor.ID,
		Receipt: r,
		Payment: p,
		Staff:   staff,
	}, map[string]any{"receipt_id": r.ID, "payment_id": p.ID})

	return r, nil
}

// ======================================================
// SIGN / QUERIES
// ======================================================

type Receipts struct {
	repo  domainreceipt.Repository
	audit audit.Sink
	now   func() time.Time
}

func NewReceipts(repo domainreceipt.Repository, auditSink audit.Sink) *Receipts {
	return &Receipts{repo: repo, audit: auditSink, now: time.Now}
}

func (uc *Receipts) Get(ctx context.Context, actor access.Actor, id uint) (*models.Receipt, error) {
	r, err := uc.repo.GetReceipt(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("receipt_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.Scope().Owns(r.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return r, nil
}

func (uc *Receipts) List(ctx context.Context, actor access.Actor) ([]models.Receipt, error) {
	return uc.repo.ListReceipts(ctx, actor.Scope())
}

func (uc *Receipts) Sign(ctx context.Context, actor access.Actor, id uint) (*models.Receipt, error) {
	r, err := uc.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := domainreceipt.Sign(r, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateReceipt(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "receipt_signed",
		Entity:   "receipt",
		EntityID: &r.ID,
	})
	return r, nil
}
