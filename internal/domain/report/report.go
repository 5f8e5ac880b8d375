package report

import (
	"context"

	"github.com/alanfo18/stcd/internal/access"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AmountTotal agrupa pagamentos por uma chave (status ou método). Total em centavos.
type AmountTotal struct {
	Key   string `gorm:"column:group_key" json:"key"`
	Count int64  `json:"count"`
	Total int64  `json:"total"`
}

type Repository interface {
	CountBookingsByStatus(ctx context.Context, scope access.Scope) ([]StatusCount, error)
	SumPaymentsByStatus(ctx context.Context, scope access.Scope) ([]AmountTotal, error)
	SumPaymentsByMethod(ctx context.Context, scope access.Scope) ([]AmountTotal, error)
}
