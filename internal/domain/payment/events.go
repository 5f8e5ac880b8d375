package payment

import "github.com/alanfo18/stcd/internal/models"

// Registered é entregue aos hooks depois que o pagamento foi gravado.
// Staff é nil quando a diarista não foi encontrada.
type Registered struct {
	ActorID uint
	Payment *models.Payment
	Staff   *models.StaffMember

	// NotifyPaid liga o ramo de mensagens "pagamento realizado".
	NotifyPaid bool
}
