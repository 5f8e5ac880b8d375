// Package notify monta os hooks pós-gravação que avisam coordenação, diaristas
// e o painel administrativo.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/config"
	"github.com/alanfo18/stcd/internal/domain/notification"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/timezone"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

// DispatchError lista os destinatários que não receberam a mensagem.
// Nunca deve interromper a operação que disparou o aviso.
type DispatchError struct {
	Failed []string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed for %s: %v", strings.Join(e.Failed, ","), e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

type Notifier struct {
	sender whatsapp.Sender
	logs   notification.MessageLogRepository
	notes  notification.Repository

	coordinator string
	cc          []string
	tz          string

	now func() time.Time
}

func New(
	sender whatsapp.Sender,
	logs notification.MessageLogRepository,
	notes notification.Repository,
	cfg config.WhatsAppConfig,
	tz string,
) *Notifier {
	return &Notifier{
		sender:      sender,
		logs:        logs,
		notes:       notes,
		coordinator: cfg.CoordinatorPhone,
		cc:          cfg.CCPhones,
		tz:          tz,
		now:         time.Now,
	}
}

func (n *Notifier) formatDate(t time.Time) string {
	return timezone.FormatBR(t.In(timezone.Location(n.tz)))
}

// send entrega uma mensagem e grava o resultado no log de mensagens.
func (n *Notifier) send(ctx context.Context, msg whatsapp.Message, entry models.MessageLog) error {
	err := n.sender.Send(ctx, msg)

	entry.Phone = msg.To
	entry.Body = msg.Body
	if err != nil {
		entry.Status = models.MessageStatusFailed
		entry.Error = truncate(err.Error(), 255)
	} else {
		now := n.now()
		entry.Status = models.MessageStatusSent
		entry.SentAt = &now
	}

	if logErr := n.logs.CreateMessageLog(ctx, &entry); logErr != nil {
		log.Error().Err(logErr).Str("phone", msg.To).Msg("failed to record message log")
	}

	return err
}

// fanOut envia para cada destinatário sem parar no primeiro erro.
func (n *Notifier) fanOut(ctx context.Context, msgs []whatsapp.Message, entry models.MessageLog) error {
	var failed []string
	var errs []error

	for _, m := range msgs {
		if err := n.send(ctx, m, entry); err != nil {
			failed = append(failed, m.To)
			errs = append(errs, err)
		}
	}

	if len(failed) > 0 {
		return &DispatchError{Failed: failed, Err: errors.Join(errs...)}
	}
	return nil
}

// record cria a notificação do painel. whatsappSent reflete os envios gravados.
func (n *Notifier) record(ctx context.Context, note models.Notification, filter *notification.MessageLogFilter) error {
	if filter != nil {
		filter.Status = models.MessageStatusSent
		filter.Limit = 1
		if sent, err := n.logs.ListMessageLogs(ctx, *filter); err == nil {
			note.WhatsAppSent = len(sent) > 0
		}
	}
	return n.notes.CreateNotification(ctx, &note)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func ptr[T any](v T) *T { return &v }
