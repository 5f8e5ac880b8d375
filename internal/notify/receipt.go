package notify

import (
	"context"
	"fmt"

	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/domain/receipt"
	"github.com/alanfo18/stcd/internal/hooks"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/money"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

func (n *Notifier) ReceiptHooks() []hooks.Hook[receipt.Issued] {
	return []hooks.Hook[receipt.Issued]{
		{Name: "notify_staff_receipt", Fn: n.ReceiptStaff},
		{Name: "admin_notification", Fn: n.ReceiptRecord},
	}
}

func (n *Notifier) ReceiptStaff(ctx context.Context, ev receipt.Issued) error {
	if ev.Staff == nil || ev.Staff.Phone == "" {
		return nil
	}

	return n.fanOut(ctx, []whatsapp.Message{{
		To:       ev.Staff.Phone,
		Body:     receiptMessage(money.FormatBRL(ev.Payment.Amount), n.formatDate(ev.Payment.PaidAt), ev.Receipt.URL),
		Priority: whatsapp.PriorityNormal,
	}}, models.MessageLog{
		PaymentID: ptr(ev.Payment.ID),
		StaffID:   ptr(ev.Staff.ID),
		Kind:      models.MessageKindReceipt,
	})
}

func (n *Notifier) ReceiptRecord(ctx context.Context, ev receipt.Issued) error {
	return n.record(ctx, models.Notification{
		UserID:      ev.ActorID,
		Kind:        models.NotificationReceiptIssued,
		Title:       "Recibo emitido",
		Description: fmt.Sprintf("Pagamento #%d • %s", ev.Payment.ID, money.FormatBRL(ev.Payment.Amount)),
		Icon:        "receipt",
		Color:       "purple",
		EntityID:    ptr(ev.Receipt.ID),
		EntityTable: "receipts",
	}, &notification.MessageLogFilter{PaymentID: ptr(ev.Payment.ID)})
}
