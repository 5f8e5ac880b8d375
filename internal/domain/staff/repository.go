package staff

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

type Repository interface {
	// -------- Staff --------
	CreateStaff(ctx context.Context, s *models.StaffMember) error
	GetStaff(ctx context.Context, id uint) (*models.StaffMember, error)
	UpdateStaff(ctx context.Context, s *models.StaffMember) error
	DeleteStaff(ctx context.Context, id uint) error
	ListStaff(ctx context.Context, scope access.Scope, activeOnly bool) ([]models.StaffMember, error)

	// -------- Specialty --------
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	GetSpecialty(ctx context.Context, id uint) (*models.Specialty, error)
	CreateSpecialty(ctx context.Context, sp *models.Specialty) error

	// -------- Staff x Specialty --------
	AddStaffSpecialty(ctx context.Context, staffID, specialtyID uint) error
	RemoveStaffSpecialty(ctx context.Context, staffID, specialtyID uint) error
	ListStaffSpecialties(ctx context.Context, staffID uint) ([]models.Specialty, error)
}
