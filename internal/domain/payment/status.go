package payment

import "github.com/alanfo18/stcd/internal/httperr"

type Method string

const (
	MethodCash     Method = "cash"
	MethodPix      Method = "pix"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
)

var methodLabels = map[Method]string{
	MethodCash:     "Dinheiro",
	MethodPix:      "PIX",
	MethodTransfer: "Transferência",
	MethodCard:     "Cartão",
}

func (m Method) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

// Label é o nome exibido nas mensagens.
func (m Method) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// CanMarkPaid: só pendentes viram pagos.
func CanMarkPaid(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
