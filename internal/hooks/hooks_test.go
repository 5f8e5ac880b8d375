package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeepsGoingAfterFailures(t *testing.T) {
	var calls []string

	list := []Hook[int]{
		{Name: "first", Fn: func(_ context.Context, ev int) error {
			calls = append(calls, "first")
			return errors.New("gateway down")
		}},
		{Name: "second", Fn: func(_ context.Context, ev int) error {
			calls = append(calls, "second")
			panic("boom")
		}},
		{Name: "third", Fn: func(_ context.Context, ev int) error {
			calls = append(calls, "third")
			assert.Equal(t, 42, ev)
			return nil
		}},
	}

	out := Run(context.Background(), list, 42, map[string]any{"booking_id": 1})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
	require.Len(t, out, 3)
	assert.False(t, out[0].OK())
	assert.ErrorContains(t, out[1].Err, "panicked")
	assert.True(t, out[2].OK())
	assert.Equal(t, []string{"first", "second"}, Failed(out))
}

func TestRunEmpty(t *testing.T) {
	out := Run[string](context.Background(), nil, "x", nil)
	assert.Empty(t, out)
	assert.Empty(t, Failed(out))
}
