package booking

import (
	"context"
	"strings"
	"time"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domain "github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/timezone"
)

// UpdateBookingInput: campos nil ficam como estão.
type UpdateBookingInput struct {
	Actor access.Actor
	ID    uint

	StaffID        *uint
	SpecialtyID    *uint
	ServiceAddress *string
	StartDate      *string
	EndDate        *string
	DailyRate      *int64
	Description    *string
	Notes          *string
}

type UpdateBooking struct {
	repo  domain.Repository
	audit audit.Sink
	tz    string
}

func NewUpdateBooking(repo domain.Repository, auditSink audit.Sink, tz string) *UpdateBooking {
	return &UpdateBooking{repo: repo, audit: auditSink, tz: tz}
}

func (uc *UpdateBooking) Execute(ctx context.Context, in UpdateBookingInput) (*models.Booking, error) {
	b, err := loadOwned(ctx, uc.repo, in.Actor, in.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanEdit(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	if in.ServiceAddress != nil {
		address := strings.TrimSpace(*in.ServiceAddress)
		if address == "" {
			return nil, httperr.ErrValidation("invalid_address")
		}
		b.ServiceAddress = address
	}
	if in.Description != nil {
		b.Description = strings.TrimSpace(*in.Description)
	}
	if in.Notes != nil {
		b.Notes = strings.TrimSpace(*in.Notes)
	}

	if in.StaffID != nil && *in.StaffID != b.StaffID {
		staff, err := resolveStaff(ctx, uc.repo, in.Actor, *in.StaffID)
		if err != nil {
			return nil, err
		}
		b.StaffID = staff.ID
		b.Staff = *staff
	}
	if in.SpecialtyID != nil && *in.SpecialtyID != b.SpecialtyID {
		sp, err := resolveSpecialty(ctx, uc.repo, *in.SpecialtyID)
		if err != nil {
			return nil, err
		}
		b.SpecialtyID = sp.ID
		b.Specialty = *sp
	}

	// período e diária: recalcula o total
	// datas lidas do banco podem vir em UTC; a conta usa a data local
	loc := timezone.Location(uc.tz)
	b.StartDate, b.EndDate = b.StartDate.In(loc), b.EndDate.In(loc)

	repriced := false
	if in.StartDate != nil {
		if b.StartDate, err = parseDate(uc.tz, *in.StartDate); err != nil {
			return nil, err
		}
		repriced = true
	}
	if in.EndDate != nil {
		if b.EndDate, err = parseDate(uc.tz, *in.EndDate); err != nil {
			return nil, err
		}
		repriced = true
	}
	if in.DailyRate != nil {
		b.DailyRate = *in.DailyRate
		repriced = true
	}
	if repriced || b.TotalPrice == nil {
		if err := domain.Reprice(b); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.ID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// Complete / Cancel
// ======================================================

type transition func(b *models.Booking, now time.Time) error

type ChangeBookingStatus struct {
	repo   domain.Repository
	audit  audit.Sink
	apply  transition
	action string
	now    func() time.Time
}

func NewCompleteBooking(repo domain.Repository, auditSink audit.Sink) *ChangeBookingStatus {
	return &ChangeBookingStatus{repo: repo, audit: auditSink, apply: domain.Complete, action: "booking_completed", now: time.Now}
}

func NewCancelBooking(repo domain.Repository, auditSink audit.Sink) *ChangeBookingStatus {
	return &ChangeBookingStatus{repo: repo, audit: auditSink, apply: domain.Cancel, action: "booking_cancelled", now: time.Now}
}

func (uc *ChangeBookingStatus) Execute(ctx context.Context, actor access.Actor, id uint) (*models.Booking, error) {
	b, err := loadOwned(ctx, uc.repo, actor, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   uc.action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
