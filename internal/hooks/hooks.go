// Package hooks executa efeitos colaterais depois que uma escrita foi confirmada.
// Cada hook é independente: a falha de um não impede os seguintes nem desfaz a escrita.
package hooks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Hook[E any] struct {
	Name string
	Fn   func(ctx context.Context, ev E) error
}

type Outcome struct {
	Name string
	Err  error
}

func (o Outcome) OK() bool { return o.Err == nil }

// Run executa os hooks em ordem, registrando o resultado de cada um.
// fields permite anexar identificadores (booking_id, payment_id) ao log.
func Run[E any](ctx context.Context, list []Hook[E], ev E, fields map[string]any) []Outcome {
	out := make([]Outcome, 0, len(list))

	for _, h := range list {
		err := call(ctx, h, ev)
		out = append(out, Outcome{Name: h.Name, Err: err})

		var e *zerolog.Event
		if err != nil {
			e = log.Warn().Err(err)
		} else {
			e = log.Debug()
		}
		e.Str("hook", h.Name).Fields(fields).Msg("post-commit hook")
	}

	return out
}

func call[E any](ctx context.Context, h Hook[E], ev E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hook %s panicked: %v", h.Name, r)
		}
	}()
	return h.Fn(ctx, ev)
}

// Failed devolve os nomes dos hooks que falharam.
func Failed(outcomes []Outcome) []string {
	var names []string
	for _, o := range outcomes {
		if !o.OK() {
			names = append(names, o.Name)
		}
	}
	return names
}
