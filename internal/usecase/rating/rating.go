package rating

import (
	"context"
	"errors"
	"strings"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	domainrating "github.com/alanfo18/stcd/internal/domain/rating"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateRatingInput struct {
	Actor     access.Actor
	BookingID uint
	Score     int
	Comment   string
}

type CreateRating struct {
	repo  domainrating.Repository
	hooks []hooks.Hook[domainrating.Created]
}

func NewCreateRating(
	repo domainrating.Repository,
	auditSink audit.Sink,
	notify []hooks.Hook[domainrating.Created],
) *CreateRating {
	list := append([]hooks.Hook[domainrating.Created]{}, notify...)
	list = append(list, hooks.Hook[domainrating.Created]{
		Name: "audit",
		Fn: func(_ context.Context, ev domainrating.Created) error {
			auditSink.Dispatch(audit.Event{
				UserID:   &ev.ActorID,
				Action:   "rating_created",
				Entity:   "rating",
				EntityID: &ev.Rating.ID,
				Metadata: map[string]any{"staff_id": ev.Rating.StaffID, "score": ev.Rating.Score},
			})
			return nil
		},
	})
	return &CreateRating{repo: repo, hooks: list}
}

// Execute avalia a diarista do agendamento informado.
func (uc *CreateRating) Execute(ctx context.Context, in CreateRatingInput) (*models.Rating, error) {
	if err := domainrating.ValidateScore(in.Score); err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("booking_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !in.Actor.Scope().Owns(b.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	r := &models.Rating{
		UserID:    in.Actor.ID,
		StaffID:   b.StaffID,
		BookingID: b.ID,
		Score:     in.Score,
		Comment:   strings.TrimSpace(in.Comment),
	}
	if err := uc.repo.CreateRating(ctx, r); err != nil {
		return nil, err
	}

	// diarista removida não impede a avaliação
	staff, err := uc.repo.GetStaff(ctx, b.StaffID)
	if err != nil {
		staff = nil
	}

	hooks.Run(ctx, uc.hooks, domainrating.Created{
		ActorID: in.Actor.ID,
		Rating:  r,
		Staff:   staff,
	}, map[string]any{"rating_id": r.ID})

	return r, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateRating struct {
	repo  domainrating.Repository
	audit audit.Sink
}

func NewUpdateRating(repo domainrating.Repository, auditSink audit.Sink) *UpdateRating {
	return &UpdateRating{repo: repo, audit: auditSink}
}

func (uc *UpdateRating) Execute(
	ctx context.Context,
	actor access.Actor,
	id uint,
	score *int,
	comment *string,
) (*models.Rating, error) {

	r, err := uc.repo.GetRating(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("rating_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.Scope().Owns(r.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	if score != nil {
		if err := domainrating.ValidateScore(*score); err != nil {
			return nil, err
		}
		r.Score = *score
	}
	if comment != nil {
		r.Comment = strings.TrimSpace(*comment)
	}

	if err := uc.repo.UpdateRating(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "rating_updated",
		Entity:   "rating",
		EntityID: &r.ID,
	})
	return r, nil
}

// ======================================================
// QUERIES
// ======================================================

type StaffSummary struct {
	StaffID uint    `json:"staff_id"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ListRatings struct {
	repo domainrating.Repository
}

func NewListRatings(repo domainrating.Repository) *ListRatings {
	return &ListRatings{repo: repo}
}

func (uc *ListRatings) ForStaff(ctx context.Context, actor access.Actor, staffID uint) ([]models.Rating, error) {
	if err := uc.checkStaff(ctx, actor, staffID); err != nil {
		return nil, err
	}
	return uc.repo.ListRatingsForStaff(ctx, staffID)
}

func (uc *ListRatings) Average(ctx context.Context, actor access.Actor, staffID uint) (*StaffSummary, error) {
	if err := uc.checkStaff(ctx, actor, staffID); err != nil {
		return nil, err
	}
	avg, count, err := uc.repo.AverageScore(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return &StaffSummary{StaffID: staffID, Average: avg, Count: count}, nil
}

// checkStaff: avaliações de uma diarista só para o dono dela ou admin.
func (uc *ListRatings) checkStaff(ctx context.Context, actor access.Actor, staffID uint) error {
	s, err := uc.repo.GetStaff(ctx, staffID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound("staff_not_found")
	}
	if err != nil {
		return err
	}
	if !actor.Scope().Owns(s.UserID) {
		return httperr.ErrForbidden("forbidden")
	}
	return nil
}
