// Package domain reúne o que é comum aos agregados: o erro de registro inexistente
// devolvido por qualquer implementação de Repository.
package domain

import "errors"

var ErrNotFound = errors.New("record not found")
