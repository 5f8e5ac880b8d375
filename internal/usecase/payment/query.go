package payment

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/models"
)

type ListPayments struct {
	repo domainpayment.Repository
}

func NewListPayments(repo domainpayment.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

func (uc *ListPayments) Execute(ctx context.Context, actor access.Actor) ([]models.Payment, error) {
	return uc.repo.ListPayments(ctx, actor.Scope())
}

func (uc *ListPayments) ForStaff(ctx context.Context, actor access.Actor, staffID uint) ([]models.Payment, error) {
	return uc.repo.ListPaymentsForStaff(ctx, actor.Scope(), staffID)
}

func (uc *ListPayments) Get(ctx context.Context, actor access.Actor, id uint) (*models.Payment, error) {
	return loadOwned(ctx, uc.repo, actor, id)
}

func (uc *ListPayments) Proofs(ctx context.Context, actor access.Actor, id uint) ([]models.ProofFile, error) {
	p, err := loadOwned(ctx, uc.repo, actor, id)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListProofFiles(ctx, p.ID)
}
