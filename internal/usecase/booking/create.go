package booking

import (
	"context"
	"strings"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domain "github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor access.Actor

	StaffID     uint
	SpecialtyID uint

	ServiceAddress string
	StartDate      string // YYYY-MM-DD
	EndDate        string // YYYY-MM-DD

	DailyRate  int64
	TotalPrice *int64

	Description string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Sink
	hooks []hooks.Hook[domain.Created]
	tz    string
}

// NewCreateBooking recebe os hooks de notificação; a auditoria entra por último.
func NewCreateBooking(
	repo domain.Repository,
	auditSink audit.Sink,
	tz string,
	notify []hooks.Hook[domain.Created],
) *CreateBooking {
	uc := &CreateBooking{
		repo:  repo,
		audit: auditSink,
		tz:    tz,
	}
	uc.hooks = append(append([]hooks.Hook[domain.Created]{}, notify...), hooks.Hook[domain.Created]{
		Name: "audit",
		Fn:   uc.auditCreated,
	})
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	address := strings.TrimSpace(in.ServiceAddress)
	if address == "" {
		return nil, httperr.ErrValidation("invalid_address")
	}
	if in.DailyRate < 0 {
		return nil, httperr.ErrValidation("invalid_daily_rate")
	}

	start, err := parseDate(uc.tz, in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(uc.tz, in.EndDate)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Valor (diária × dias)
	// --------------------------------------------------
	total, err := domain.ComputeTotal(in.DailyRate, start, end)
	if err != nil {
		return nil, err
	}
	if in.TotalPrice != nil && *in.TotalPrice != total {
		return nil, httperr.ErrValidation("invalid_total")
	}

	// --------------------------------------------------
	// 3️⃣ Diarista e especialidade
	// --------------------------------------------------
	staff, err := resolveStaff(ctx, uc.repo, in.Actor, in.StaffID)
	if err != nil {
		return nil, err
	}
	specialty, err := resolveSpecialty(ctx, uc.repo, in.SpecialtyID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Gravação
	// --------------------------------------------------
	b := &models.Booking{
		UserID:         in.Actor.ID,
		StaffID:        staff.ID,
		SpecialtyID:    specialty.ID,
		ServiceAddress: address,
		StartDate:      start,
		EndDate:        end,
		Description:    strings.TrimSpace(in.Description),
		Status:         string(domain.InitialStatus()),
		DailyRate:      in.DailyRate,
		TotalPrice:     &total,
		Notes:          strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	b.Staff = *staff
	b.Specialty = *specialty

	// --------------------------------------------------
	// 5️⃣ Hooks pós-gravação (falhas só são registradas)
	// --------------------------------------------------
	hooks.Run(ctx, uc.hooks, domain.Created{
		ActorID:   in.Actor.ID,
		Booking:   b,
		Staff:     staff,
		Specialty: specialty,
	}, map[string]any{"booking_id": b.ID})

	return b, nil
}

func (uc *CreateBooking) auditCreated(_ context.Context, ev domain.Created) error {
	uc.audit.Dispatch(audit.Event{
		UserID:      &ev.ActorID,
		Action:      "booking_created",
		Entity:      "booking",
		EntityID:    &ev.Booking.ID,
		Description: "Agendamento criado",
		Metadata: map[string]any{
			"staff_id":    ev.Booking.StaffID,
			"total_price": ev.Total(),
		},
	})
	return nil
}
