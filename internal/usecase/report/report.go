package report

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
	domainreport "github.com/alanfo18/stcd/internal/domain/report"
)

// Summary é o painel de totais. Valores em centavos.
type Summary struct {
	BookingsByStatus []domainreport.StatusCount `json:"bookings_by_status"`
	PaymentsByStatus []domainreport.AmountTotal `json:"payments_by_status"`
	PaymentsByMethod []domainreport.AmountTotal `json:"payments_by_method"`
	TotalPaid        int64                      `json:"total_paid"`
	TotalPending     int64                      `json:"total_pending"`
}

type BuildSummary struct {
	repo domainreport.Repository
}

func NewBuildSummary(repo domainreport.Repository) *BuildSummary {
	return &BuildSummary{repo: repo}
}

func (uc *BuildSummary) Execute(ctx context.Context, actor access.Actor) (*Summary, error) {
	scope := actor.Scope()

	bookings, err := uc.repo.CountBookingsByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.repo.SumPaymentsByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	byMethod, err := uc.repo.SumPaymentsByMethod(ctx, scope)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		BookingsByStatus: bookings,
		PaymentsByStatus: byStatus,
		PaymentsByMethod: byMethod,
	}
	for _, row := range byStatus {
		switch row.Key {
		case "paid":
			s.TotalPaid = row.Total
		case "pending":
			s.TotalPending = row.Total
		}
	}
	return s, nil
}
