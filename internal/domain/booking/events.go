package booking

import "github.com/alanfo18/stcd/internal/models"

// Created é entregue aos hooks depois que o agendamento foi gravado.
type Created struct {
	ActorID   uint
	Booking   *models.Booking
	Staff     *models.StaffMember
	Specialty *models.Specialty
}

// Total devolve o valor calculado, zero quando ausente.
func (e Created) Total() int64 {
	if e.Booking == nil || e.Booking.TotalPrice == nil {
		return 0
	}
	return *e.Booking.TotalPrice
}
