package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/db"
	"github.com/alanfo18/stcd/internal/infra/repository"
	"github.com/alanfo18/stcd/internal/models"
)

func TestSummaryTotalsPerScope(t *testing.T) {
	gdb, err := db.Open("sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store := repository.NewGormStore(gdb)
	ctx := context.Background()
	now := time.Now()

	for _, p := range []models.Payment{
		{UserID: 1, StaffID: 1, Amount: 45000, PaidAt: now, Method: "pix", Status: "paid"},
		{UserID: 1, StaffID: 1, Amount: 15000, PaidAt: now, Method: "cash", Status: "pending"},
		{UserID: 2, StaffID: 2, Amount: 10000, PaidAt: now, Method: "pix", Status: "paid"},
	} {
		p := p
		require.NoError(t, store.CreatePayment(ctx, &p))
	}

	uc := NewBuildSummary(store)

	mine, err := uc.Execute(ctx, access.Actor{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(45000), mine.TotalPaid)
	assert.Equal(t, int64(15000), mine.TotalPending)
	assert.Len(t, mine.PaymentsByMethod, 2)
	assert.Empty(t, mine.BookingsByStatus)

	all, err := uc.Execute(ctx, access.Actor{ID: 9, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(55000), all.TotalPaid)
}
