package receipt

import (
	"context"
	"testing"
	"time"

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

type sender struct{ sent []whatsapp.Message }

func (s *sender) Send(_ context.Context, m whatsapp.Message) error {
	s.sent = append(s.sent, m)
	return nil
}

type nopSink struct{}

func (nopSink) Dispatch(audit.Event) {}

var (
	owner    = access.Actor{ID: 1, Role: models.RoleUser}
	stranger = access.Actor{ID: 2, Role: models.RoleUser}
	admin    = access.Actor{ID: 3, Role: models.RoleAdmin}
)

func setup(t *testing.T) (*repository.GormStore, *models.Payment) {
	t.Helper()

	gdb, err := db.Open("sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store := repository.NewGormStore(gdb)
	ctx := context.Background()

	st := &models.StaffMember{UserID: 1, Name: "Maria", Phone: "5511999999999", Active: true}
	require.NoError(t, store.CreateStaff(ctx, st))

	p := &models.Payment{
		UserID: 1, StaffID: st.ID, Amount: 45000,
		PaidAt: time.Date(2024, 3, 12, 0, 0, 0, 0, timezone.Location(timezone.DefaultTimezone)),
		Method: "pix", Status: "paid",
	}
	require.NoError(t, store.CreatePayment(ctx, p))
	return store, p
}

func TestIssueReceipt(t *testing.T) {
	store, p := setup(t)
	out := &sender{}
	n := notify.New(out, store, store, config.WhatsAppConfig{}, timezone.DefaultTimezone)
	uc := NewIssueReceipt(store, nopSink{}, n.ReceiptHooks())
	ctx := context.Background()

	r, err := uc.Execute(ctx, owner, p.ID, "https://cdn.example.com/r/1.pdf")
	require.NoError(t, err)
	assert.Equal(t, p.StaffID, r.StaffID)
	assert.False(t, r.Signed)

	require.Len(t, out.sent, 1)
	assert.Contains(t, out.sent[0].Body, "R$ 450,00")
	assert.Contains(t, out.sent[0].Body, "12/03/2024")

	notes, err := store.ListNotifications(ctx, access.Scope{All: true}, false)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationReceiptIssued, notes[0].Kind)
	assert.True(t, notes[0].WhatsAppSent)

	_, err = uc.Execute(ctx, owner, p.ID, "")
	assert.True(t, httperr.IsBusiness(err, "already_issued"))

	_, err = uc.Execute(ctx, owner, 999, "")
	assert.True(t, httperr.IsBusiness(err, "payment_not_found"))

	_, err = uc.Execute(ctx, stranger, p.ID, "")
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestSignAndList(t *testing.T) {
	store, p := setup(t)
	ctx := context.Background()

	r, err := NewIssueReceipt(store, nopSink{}, nil).Execute(ctx, owner, p.ID, "")
	require.NoError(t, err)

	receipts := NewReceipts(store, nopSink{})

	signed, err := receipts.Sign(ctx, owner, r.ID)
	require.NoError(t, err)
	assert.True(t, signed.Signed)
	require.NotNil(t, signed.SignedAt)

	_, err = receipts.Sign(ctx, owner, r.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = receipts.Get(ctx, stranger, r.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	got, err := receipts.Get(ctx, admin, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Signed)

	mine, err := receipts.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := receipts.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
