// Package gateway consulta o status de pagamentos no Mercado Pago.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const StatusApproved = "approved"

var (
	ErrUnavailable = errors.New("gateway: mercado pago não configurado")
	ErrInvalidRef  = errors.New("gateway: referência de pagamento inválida")
)

// Lookup devolve o status do pagamento identificado por ref no gateway.
type Lookup interface {
	PaymentStatus(ctx context.Context, ref string) (string, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPago struct {
	client paymentGetter
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) PaymentStatus(ctx context.Context, ref string) (string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil || id <= 0 {
		return "", ErrInvalidRef
	}

	res, err := m.client.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("gateway: get payment %d: %w", id, err)
	}
	return res.Status, nil
}

type Noop struct{}

func (Noop) PaymentStatus(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

// New devolve o cliente do Mercado Pago ou Noop quando não há token.
func New(accessToken string) (Lookup, error) {
	if accessToken == "" {
		return Noop{}, nil
	}
	return NewMercadoPago(accessToken)
}
