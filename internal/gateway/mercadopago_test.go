package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	id  int
	res *payment.Response
	err error
}

func (f *fakeGetter) Get(_ context.Context, id int) (*payment.Response, error) {
	f.id = id
	return f.res, f.err
}

func TestPaymentStatus(t *testing.T) {
	fake := &fakeGetter{res: &payment.Response{Status: StatusApproved}}
	mp := &MercadoPago{client: fake}

	status, err := mp.PaymentStatus(context.Background(), " 123456 ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
	assert.Equal(t, 123456, fake.id)
}

func TestPaymentStatusErrors(t *testing.T) {
	mp := &MercadoPago{client: &fakeGetter{err: errors.New("404")}}

	_, err := mp.PaymentStatus(context.Background(), "https://cdn/x.webp")
	assert.ErrorIs(t, err, ErrInvalidRef)

	_, err = mp.PaymentStatus(context.Background(), "99")
	assert.ErrorContains(t, err, "404")

	lookup, err := New("")
	require.NoError(t, err)
	_, err = lookup.PaymentStatus(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
