package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/domain"
	domainbooking "github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/timezone"
)

// loadOwned busca o agendamento e confere se o ator pode vê-lo.
func loadOwned(
	ctx context.Context,
	repo domainbooking.Repository,
	actor access.Actor,
	id uint,
) (*models.Booking, error) {

	b, err := repo.GetBooking(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !actor.Scope().Owns(b.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return b, nil
}

// resolveStaff só aceita diaristas que o ator pode ver.
func resolveStaff(ctx context.Context, repo domainbooking.Repository, actor access.Actor, id uint) (*models.StaffMember, error) {
	s, err := repo.GetStaff(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("staff_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.Scope().Owns(s.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return s, nil
}

func resolveSpecialty(ctx context.Context, repo domainbooking.Repository, id uint) (*models.Specialty, error) {
	sp, err := repo.GetSpecialty(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("specialty_not_found")
	}
	return sp, err
}

func parseDate(tz, value string) (time.Time, error) {
	t, err := timezone.ParseDate(tz, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return t, nil
}
