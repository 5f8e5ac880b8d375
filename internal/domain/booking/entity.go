package booking

import (
	"time"

	"github.com/alanfo18/stcd/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// Reprice recalcula o total a partir da diária e do período atuais.
func Reprice(b *models.Booking) error {
	total, err := ComputeTotal(b.DailyRate, b.StartDate, b.EndDate)
	if err != nil {
		return err
	}
	b.TotalPrice = &total
	return nil
}
