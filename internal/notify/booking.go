package notify

import (
	"context"
	"fmt"

	"github.com/alanfo18/stcd/internal/domain/booking"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/money"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

func (n *Notifier) BookingHooks() []hooks.Hook[booking.Created] {
	return []hooks.Hook[booking.Created]{
		{Name: "notify_coordinator", Fn: n.BookingCoordinator},
		{Name: "notify_staff", Fn: n.BookingStaff},
		{Name: "admin_notification", Fn: n.BookingRecord},
	}
}

func (n *Notifier) bookingText(ev booking.Created) bookingText {
	t := bookingText{
		Address:     ev.Booking.ServiceAddress,
		Start:       n.formatDate(ev.Booking.StartDate),
		End:         n.formatDate(ev.Booking.EndDate),
		Amount:      money.FormatBRL(ev.Total()),
		Description: ev.Booking.Description,
	}
	if ev.Staff != nil {
		t.StaffName = ev.Staff.Name
	}
	if ev.Specialty != nil {
		t.Specialty = ev.Specialty.Name
	}
	return t
}

func (n *Notifier) bookingLog(ev booking.Created) models.MessageLog {
	return models.MessageLog{
		BookingID: ptr(ev.Booking.ID),
		StaffID:   ptr(ev.Booking.StaffID),
		Kind:      models.MessageKindBooking,
	}
}

// BookingCoordinator avisa o coordenador (alta prioridade) e envia cópias aos CCs.
func (n *Notifier) BookingCoordinator(ctx context.Context, ev booking.Created) error {
	if ev.Total() == 0 || n.coordinator == "" {
		return nil
	}

	body := bookingCoordinatorMessage(n.bookingText(ev))

	msgs := []whatsapp.Message{{To: n.coordinator, Body: body, Priority: whatsapp.PriorityHigh}}
	for _, phone := range n.cc {
		msgs = append(msgs, whatsapp.Message{To: phone, Body: ccPrefix + body, Priority: whatsapp.PriorityNormal})
	}

	return n.fanOut(ctx, msgs, n.bookingLog(ev))
}

// BookingStaff pede à diarista a confirmação de presença.
func (n *Notifier) BookingStaff(ctx context.Context, ev booking.Created) error {
	if ev.Total() == 0 || ev.Staff == nil {
		return nil
	}
	if ev.Staff.Phone == "" {
		return &DispatchError{Failed: []string{"staff"}, Err: fmt.Errorf("staff %d has no phone", ev.Staff.ID)}
	}

	return n.fanOut(ctx, []whatsapp.Message{{
		To:       ev.Staff.Phone,
		Body:     bookingStaffMessage(n.bookingText(ev)),
		Priority: whatsapp.PriorityHigh,
	}}, n.bookingLog(ev))
}

func (n *Notifier) BookingRecord(ctx context.Context, ev booking.Created) error {
	t := n.bookingText(ev)
	return n.record(ctx, models.Notification{
		UserID:      ev.ActorID,
		Kind:        models.NotificationBookingCreated,
		Title:       "Novo agendamento",
		Description: fmt.Sprintf("%s • %s a %s • %s", t.StaffName, t.Start, t.End, t.Amount),
		Icon:        "calendar",
		Color:       "blue",
		EntityID:    ptr(ev.Booking.ID),
		EntityTable: "bookings",
	}, &notification.MessageLogFilter{BookingID: ptr(ev.Booking.ID)})
}
