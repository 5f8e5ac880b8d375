package booking

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domain "github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute devolve todos os agendamentos para admin e só os próprios para os demais.
func (uc *ListBookings) Execute(ctx context.Context, actor access.Actor) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, actor.Scope())
}

func (uc *ListBookings) ForStaff(ctx context.Context, actor access.Actor, staffID uint) ([]models.Booking, error) {
	return uc.repo.ListBookingsForStaff(ctx, actor.Scope(), staffID)
}

func (uc *ListBookings) Get(ctx context.Context, actor access.Actor, id uint) (*models.Booking, error) {
	return loadOwned(ctx, uc.repo, actor, id)
}

type DeleteBooking struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteBooking(repo domain.Repository, auditSink audit.Sink) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: auditSink}
}

func (uc *DeleteBooking) Execute(ctx context.Context, actor access.Actor, id uint) error {
	b, err := loadOwned(ctx, uc.repo, actor, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})
	return nil
}
