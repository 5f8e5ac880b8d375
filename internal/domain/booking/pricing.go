package booking

import (
	"time"

	"github.com/alanfo18/stcd/internal/httperr"
)

const day = 24 * time.Hour

// DaysInclusive conta os dias do período incluindo início e fim:
// ceil((end - start) / 24h) + 1. Mesmo dia = 1.
// A conta usa a data de calendário de cada ponta, então dias de 23h ou 25h
// (horário de verão) contam como um dia e a hora é ignorada.
func DaysInclusive(start, end time.Time) (int64, error) {
	start, end = calendarDate(start), calendarDate(end)
	if end.Before(start) {
		return 0, httperr.ErrValidation("invalid_date_range")
	}

	diff := end.Sub(start)
	days := int64(diff / day)
	if diff%day != 0 {
		days++
	}
	return days + 1, nil
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeTotal devolve diária × dias, em centavos.
func ComputeTotal(dailyRate int64, start, end time.Time) (int64, error) {
	if dailyRate < 0 {
		return 0, httperr.ErrValidation("invalid_daily_rate")
	}

	days, err := DaysInclusive(start, end)
	if err != nil {
		return 0, err
	}
	return dailyRate * days, nil
}
