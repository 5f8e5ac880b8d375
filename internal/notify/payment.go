package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/money"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

// PaymentHooks roda no cadastro do pagamento.
func (n *Notifier) PaymentHooks() []hooks.Hook[payment.Registered] {
	return []hooks.Hook[payment.Registered]{
		{Name: "notify_payment_paid", Fn: n.PaymentPaid},
		{Name: "admin_notification", Fn: n.PaymentRecord},
	}
}

// PaidHooks roda quando um pagamento existente passa a "paid".
func (n *Notifier) PaidHooks() []hooks.Hook[payment.Registered] {
	return []hooks.Hook[payment.Registered]{
		{Name: "notify_payment_paid", Fn: n.PaymentPaid},
	}
}

func (n *Notifier) paymentText(ev payment.Registered) paymentText {
	return paymentText{
		StaffName: ev.Staff.Name,
		Amount:    money.FormatBRL(ev.Payment.Amount),
		Method:    payment.Method(ev.Payment.Method).Label(),
		Date:      n.formatDate(ev.Payment.PaidAt),
	}
}

// PaymentPaid envia o resumo ao coordenador e a confirmação à diarista.
// Os dois envios são independentes.
func (n *Notifier) PaymentPaid(ctx context.Context, ev payment.Registered) error {
	if !ev.NotifyPaid || ev.Staff == nil {
		return nil
	}

	coordinatorOK, staffOK, err := n.notifyPaymentMade(ctx, ev)
	log.Info().
		Uint("payment_id", ev.Payment.ID).
		Bool("coordinator_ok", coordinatorOK).
		Bool("staff_ok", staffOK).
		Bool("delivered", coordinatorOK && staffOK).
		Msg("payment notification")

	return err
}

func (n *Notifier) notifyPaymentMade(ctx context.Context, ev payment.Registered) (bool, bool, error) {
	t := n.paymentText(ev)
	entry := models.MessageLog{
		PaymentID: ptr(ev.Payment.ID),
		BookingID: ev.Payment.BookingID,
		StaffID:   ptr(ev.Staff.ID),
		Kind:      models.MessageKindPayment,
	}

	var failed []string
	var errs []error

	coordinatorOK := true
	if n.coordinator != "" {
		err := n.send(ctx, whatsapp.Message{
			To:       n.coordinator,
			Body:     paymentCoordinatorMessage(t),
			Priority: whatsapp.PriorityNormal,
		}, entry)
		if err != nil {
			coordinatorOK = false
			failed = append(failed, n.coordinator)
			errs = append(errs, err)
		}
	}

	staffOK := false
	if ev.Staff.Phone == "" {
		failed = append(failed, "staff")
		errs = append(errs, fmt.Errorf("staff %d has no phone", ev.Staff.ID))
	} else if err := n.send(ctx, whatsapp.Message{
		To:       ev.Staff.Phone,
		Body:     paymentStaffMessage(t),
		Priority: whatsapp.PriorityHigh,
	}, entry); err != nil {
		failed = append(failed, ev.Staff.Phone)
		errs = append(errs, err)
	} else {
		staffOK = true
	}

	if len(failed) > 0 {
		return coordinatorOK, staffOK, &DispatchError{Failed: failed, Err: errors.Join(errs...)}
	}
	return coordinatorOK, staffOK, nil
}

func (n *Notifier) PaymentRecord(ctx context.Context, ev payment.Registered) error {
	name := "diarista não encontrada"
	if ev.Staff != nil {
		name = ev.Staff.Name
	}

	return n.record(ctx, models.Notification{
		UserID:      ev.ActorID,
		Kind:        models.NotificationPaymentRegistered,
		Title:       "Pagamento registrado",
		Description: fmt.Sprintf("%s • %s • %s", name, money.FormatBRL(ev.Payment.Amount), payment.Method(ev.Payment.Method).Label()),
		Icon:        "wallet",
		Color:       "green",
		EntityID:    ptr(ev.Payment.ID),
		EntityTable: "payments",
	}, &notification.MessageLogFilter{PaymentID: ptr(ev.Payment.ID)})
}
