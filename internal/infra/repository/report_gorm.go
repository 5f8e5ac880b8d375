package repository

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/domain/report"
	"github.com/alanfo18/stcd/internal/models"
)

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (r *GormStore) CountBookingsByStatus(ctx context.Context, scope access.Scope) ([]report.StatusCount, error) {
	var out []report.StatusCount
	err := scoped(r.db.WithContext(ctx).Model(&models.Booking{}), scope).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore) SumPaymentsByStatus(ctx context.Context, scope access.Scope) ([]report.AmountTotal, error) {
	return r.sumPaymentsBy(ctx, scope, "status")
}

func (r *GormStore) SumPaymentsByMethod(ctx context.Context, scope access.Scope) ([]report.AmountTotal, error) {
	return r.sumPaymentsBy(ctx, scope, "method")
}

// column vem de constantes internas, nunca da requisição.
func (r *GormStore) sumPaymentsBy(ctx context.Context, scope access.Scope, column string) ([]report.AmountTotal, error) {
	var out []report.AmountTotal
	err := scoped(r.db.WithContext(ctx).Model(&models.Payment{}), scope).
		Select(column + " AS group_key, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group(column).
		Order(column).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
