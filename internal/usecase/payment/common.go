package payment

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/domain"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

func loadOwned(
	ctx context.Context,
	repo domainpayment.Repository,
	actor access.Actor,
	id uint,
) (*models.Payment, error) {

	p, err := repo.GetPayment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !actor.Scope().Owns(p.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return p, nil
}

// lookupStaff não bloqueia o fluxo: diarista ausente ou de outro usuário
// só desliga os avisos.
func lookupStaff(ctx context.Context, repo domainpayment.Repository, scope access.Scope, id uint) *models.StaffMember {
	s, err := resolveStaff(ctx, repo, scope, id)
	if err != nil {
		log.Warn().Err(err).Uint("staff_id", id).Msg("staff skipped for notification")
		return nil
	}
	return s
}

// resolveStaff devolve nil sem erro quando a diarista não existe e
// forbidden quando ela pertence a outro usuário.
func resolveStaff(ctx context.Context, repo domainpayment.Repository, scope access.Scope, id uint) (*models.StaffMember, error) {
	s, err := repo.GetStaff(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Uint("staff_id", id).Msg("staff lookup failed")
		return nil, nil
	}
	if !scope.Owns(s.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return s, nil
}
