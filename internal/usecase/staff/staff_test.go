package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/config"
	"github.com/alanfo18/stcd/internal/db"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/infra/repository"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/notify"
	"github.com/alanfo18/stcd/internal/timezone"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

type nopSink struct{}

func (nopSink) Dispatch(audit.Event) {}

var (
	owner    = access.Actor{ID: 1, Role: models.RoleUser}
	stranger = access.Actor{ID: 2, Role: models.RoleUser}
)

func str(s string) *string { return &s }

func newService(t *testing.T) (*Service, *repository.GormStore) {
	t.Helper()

	gdb, err := db.Open("sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store := repository.NewGormStore(gdb)
	n := notify.New(whatsapp.LogSender{}, store, store, config.WhatsAppConfig{}, timezone.DefaultTimezone)
	return NewService(store, nopSink{}, timezone.DefaultTimezone, n.StaffHooks()), store
}

func TestCreateStaff(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	rate := int64(15000)

	m, err := svc.Create(ctx, owner, StaffInput{
		Name:      str(" Maria "),
		Phone:     str("+55 (11) 99999-9999"),
		Email:     str("Maria@Example.com"),
		DailyRate: &rate,
		HiredAt:   str("2024-01-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", m.Name)
	assert.Equal(t, "5511999999999", m.Phone)
	assert.Equal(t, "maria@example.com", m.Email)
	assert.True(t, m.Active)
	require.NotNil(t, m.HiredAt)
	assert.Equal(t, "2024-01-15", m.HiredAt.Format(timezone.DateLayout))

	notes, err := store.ListNotifications(ctx, owner.Scope(), false)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationStaffCreated, notes[0].Kind)

	_, err = svc.Create(ctx, owner, StaffInput{Name: str("Sem telefone")})
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))

	neg := int64(-1)
	_, err = svc.Create(ctx, owner, StaffInput{Name: str("X"), Phone: str("1"), DailyRate: &neg})
	assert.True(t, httperr.IsBusiness(err, "invalid_daily_rate"))
}

func TestUpdateDeactivateDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, owner, StaffInput{Name: str("Maria"), Phone: str("5511999999999")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, stranger, m.ID, StaffInput{City: str("Campo Grande")})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	updated, err := svc.Update(ctx, owner, m.ID, StaffInput{City: str("Campo Grande")})
	require.NoError(t, err)
	assert.Equal(t, "Campo Grande", updated.City)

	_, err = svc.Deactivate(ctx, owner, m.ID)
	require.NoError(t, err)

	active, err := svc.List(ctx, owner, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, owner, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, owner, m.ID))
	_, err = svc.Get(ctx, owner, m.ID)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestSpecialtyLinks(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, owner, StaffInput{Name: str("Maria"), Phone: str("5511999999999")})
	require.NoError(t, err)

	sp, err := svc.CreateSpecialty(ctx, owner, "Passadoria", "roupas")
	require.NoError(t, err)

	_, err = svc.CreateSpecialty(ctx, owner, "Passadoria", "")
	assert.True(t, httperr.IsUniqueViolation(err))

	_, err = svc.CreateSpecialty(ctx, owner, "  ", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_name"))

	require.NoError(t, svc.LinkSpecialty(ctx, owner, m.ID, sp.ID))
	require.NoError(t, svc.LinkSpecialty(ctx, owner, m.ID, sp.ID))

	err = svc.LinkSpecialty(ctx, owner, m.ID, 999)
	assert.True(t, httperr.IsBusiness(err, "specialty_not_found"))

	linked, err := svc.StaffSpecialties(ctx, owner, m.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "Passadoria", linked[0].Name)

	require.NoError(t, svc.UnlinkSpecialty(ctx, owner, m.ID, sp.ID))
	linked, err = svc.StaffSpecialties(ctx, owner, m.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	err = svc.UnlinkSpecialty(ctx, owner, m.ID, sp.ID)
	assert.True(t, httperr.IsBusiness(err, "specialty_not_found"))

	list, err := svc.ListSpecialties(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
