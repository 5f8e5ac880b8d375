package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alanfo18/stcd/internal/httperr"
)

func TestMethod(t *testing.T) {
	assert.True(t, MethodPix.Valid())
	assert.False(t, Method("boleto").Valid())
	assert.Equal(t, "Transferência", MethodTransfer.Label())
	assert.Equal(t, "boleto", Method("boleto").Label())
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusPaid.Valid())
	assert.False(t, Status("pago").Valid())

	assert.NoError(t, CanMarkPaid(StatusPending))
	assert.True(t, httperr.IsBusiness(CanMarkPaid(StatusPaid), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanMarkPaid(StatusCancelled), "invalid_state"))
}
