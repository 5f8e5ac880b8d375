package staff

import (
	"context"
	"errors"
	"strings"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/domain"
	domainstaff "github.com/alanfo18/stcd/internal/domain/staff"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/notify"
	"github.com/alanfo18/stcd/internal/timezone"
)

type StaffInput struct {
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
	City       *string
	PostalCode *string
	DailyRate  *int64
	Active     *bool
	HiredAt    *string // YYYY-MM-DD
}

// Service agrupa as operações de cadastro de diaristas e especialidades.
type Service struct {
	repo  domainstaff.Repository
	audit audit.Sink
	hooks []hooks.Hook[notify.StaffCreated]
	tz    string
}

func NewService(
	repo domainstaff.Repository,
	auditSink audit.Sink,
	tz string,
	notifyHooks []hooks.Hook[notify.StaffCreated],
) *Service {
	return &Service{repo: repo, audit: auditSink, hooks: notifyHooks, tz: tz}
}

func (s *Service) apply(m *models.StaffMember, in StaffInput) error {
	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		m.Phone = domainstaff.NormalizePhone(*in.Phone)
	}
	if in.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Address != nil {
		m.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		m.City = strings.TrimSpace(*in.City)
	}
	if in.PostalCode != nil {
		m.PostalCode = strings.TrimSpace(*in.PostalCode)
	}
	if in.DailyRate != nil {
		m.DailyRate = *in.DailyRate
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	if in.HiredAt != nil && *in.HiredAt != "" {
		t, err := timezone.ParseDate(s.tz, *in.HiredAt)
		if err != nil {
			return httperr.ErrValidation("invalid_date")
		}
		m.HiredAt = &t
	}
	return domainstaff.Validate(m)
}

func (s *Service) Create(ctx context.Context, actor access.Actor, in StaffInput) (*models.StaffMember, error) {
	m := &models.StaffMember{UserID: actor.ID, Active: true}
	if err := s.apply(m, in); err != nil {
		return nil, err
	}
	if m.HiredAt == nil {
		today := timezone.Today(s.tz)
		m.HiredAt = &today
	}

	if err := s.repo.CreateStaff(ctx, m); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:      &actor.ID,
		Action:      "staff_created",
		Entity:      "staff",
		EntityID:    &m.ID,
		Description: "Diarista cadastrada: " + m.Name,
	})
	hooks.Run(ctx, s.hooks, notify.StaffCreated{ActorID: actor.ID, Staff: m}, map[string]any{"staff_id": m.ID})

	return m, nil
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id uint) (*models.StaffMember, error) {
	m, err := s.repo.GetStaff(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("staff_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.Scope().Owns(m.UserID) {
		return nil, httperr.ErrForbidden("forbidden")
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, actor access.Actor, activeOnly bool) ([]models.StaffMember, error) {
	return s.repo.ListStaff(ctx, actor.Scope(), activeOnly)
}

func (s *Service) Update(ctx context.Context, actor access.Actor, id uint, in StaffInput) (*models.StaffMember, error) {
	m, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(m, in); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStaff(ctx, m); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: &m.ID,
	})
	return m, nil
}

// Deactivate mantém o histórico; a diarista some das listas de ativas.
func (s *Service) Deactivate(ctx context.Context, actor access.Actor, id uint) (*models.StaffMember, error) {
	inactive := false
	return s.Update(ctx, actor, id, StaffInput{Active: &inactive})
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id uint) error {
	m, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteStaff(ctx, m.ID); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		UserID:      &actor.ID,
		Action:      "staff_deleted",
		Entity:      "staff",
		EntityID:    &m.ID,
		Description: m.Name,
	})
	return nil
}

// ======================================================
// SPECIALTIES
// ======================================================

func (s *Service) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return s.repo.ListSpecialties(ctx)
}

func (s *Service) CreateSpecialty(ctx context.Context, actor access.Actor, name, description string) (*models.Specialty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrValidation("invalid_name")
	}

	sp := &models.Specialty{Name: name, Description: strings.TrimSpace(description)}
	if err := s.repo.CreateSpecialty(ctx, sp); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "specialty_created",
		Entity:   "specialty",
		EntityID: &sp.ID,
	})
	return sp, nil
}

func (s *Service) StaffSpecialties(ctx context.Context, actor access.Actor, staffID uint) ([]models.Specialty, error) {
	if _, err := s.Get(ctx, actor, staffID); err != nil {
		return nil, err
	}
	return s.repo.ListStaffSpecialties(ctx, staffID)
}

func (s *Service) LinkSpecialty(ctx context.Context, actor access.Actor, staffID, specialtyID uint) error {
	if _, err := s.Get(ctx, actor, staffID); err != nil {
		return err
	}
	if _, err := s.repo.GetSpecialty(ctx, specialtyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrValidation("specialty_not_found")
		}
		return err
	}
	return s.repo.AddStaffSpecialty(ctx, staffID, specialtyID)
}

func (s *Service) UnlinkSpecialty(ctx context.Context, actor access.Actor, staffID, specialtyID uint) error {
	if _, err := s.Get(ctx, actor, staffID); err != nil {
		return err
	}
	err := s.repo.RemoveStaffSpecialty(ctx, staffID, specialtyID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound("specialty_not_found")
	}
	return err
}
