package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *GormStore) CreateStaff(ctx context.Context, s *models.StaffMember) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *GormStore) GetStaff(ctx context.Context, id uint) (*models.StaffMember, error) {
	var s models.StaffMember
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *GormStore) UpdateStaff(ctx context.Context, s *models.StaffMember) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *GormStore) DeleteStaff(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", id).Delete(&models.StaffSpecialty{}).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.StaffMember{}, id))
	})
}

func (r *GormStore) ListStaff(
	ctx context.Context,
	scope access.Scope,
	activeOnly bool,
) ([]models.StaffMember, error) {

	q := scoped(r.db.WithContext(ctx), scope)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var out []models.StaffMember
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Specialty
// --------------------------------------------------

func (r *GormStore) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) GetSpecialty(ctx context.Context, id uint) (*models.Specialty, error) {
	var sp models.Specialty
	if err := r.db.WithContext(ctx).First(&sp, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

func (r *GormStore) CreateSpecialty(ctx context.Context, sp *models.Specialty) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

// --------------------------------------------------
// Staff x Specialty
// --------------------------------------------------

func (r *GormStore) AddStaffSpecialty(ctx context.Context, staffID, specialtyID uint) error {
	link := models.StaffSpecialty{StaffID: staffID, SpecialtyID: specialtyID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func (r *GormStore) RemoveStaffSpecialty(ctx context.Context, staffID, specialtyID uint) error {
	return affected(r.db.WithContext(ctx).
		Where("staff_id = ? AND specialty_id = ?", staffID, specialtyID).
		Delete(&models.StaffSpecialty{}))
}

func (r *GormStore) ListStaffSpecialties(ctx context.Context, staffID uint) ([]models.Specialty, error) {
	var out []models.Specialty
	err := r.db.WithContext(ctx).
		Joins("JOIN staff_specialties ss ON ss.specialty_id = specialties.id").
		Where("ss.staff_id = ?", staffID).
		Order("specialties.name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
