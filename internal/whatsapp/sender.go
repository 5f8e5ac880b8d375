// Package whatsapp envia mensagens pelo gateway UltraMsg.
package whatsapp

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/config"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

// ErrNotConfigured: sem credenciais do UltraMsg nada sai do servidor.
var ErrNotConfigured = errors.New("whatsapp: gateway not configured")

type Message struct {
	To       string
	Body     string
	Priority Priority
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New devolve o cliente UltraMsg ou, sem credenciais, um sender que só registra em log.
func New(cfg config.WhatsAppConfig) Sender {
	if !cfg.Configured() {
		log.Warn().Msg("ultramsg credentials missing, whatsapp messages will only be logged")
		return LogSender{}
	}
	return NewUltraMsg(cfg.APIURL, cfg.InstanceID, cfg.Token)
}

// LogSender registra a mensagem e devolve ErrNotConfigured, para que
// ninguém a conte como entregue.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Info().
		Str("to", msg.To).
		Str("priority", string(msg.Priority)).
		Int("body_len", len(msg.Body)).
		Msg("whatsapp message (not sent)")
	return ErrNotConfigured
}
