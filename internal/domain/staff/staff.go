package staff

import (
	"strings"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

// Validate confere os campos obrigatórios de uma diarista.
func Validate(s *models.StaffMember) error {
	if strings.TrimSpace(s.Name) == "" {
		return httperr.ErrValidation("invalid_name")
	}
	if strings.TrimSpace(s.Phone) == "" {
		return httperr.ErrValidation("invalid_phone")
	}
	if s.DailyRate < 0 {
		return httperr.ErrValidation("invalid_daily_rate")
	}
	return nil
}

// NormalizePhone mantém só os dígitos, formato aceito pelo gateway de WhatsApp.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
