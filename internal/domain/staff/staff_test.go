package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&models.StaffMember{Name: "Maria", Phone: "5511999999999"}))
	assert.True(t, httperr.IsBusiness(Validate(&models.StaffMember{Phone: "1"}), "invalid_name"))
	assert.True(t, httperr.IsBusiness(Validate(&models.StaffMember{Name: "Maria"}), "invalid_phone"))
	assert.True(t, httperr.IsBusiness(
		Validate(&models.StaffMember{Name: "Maria", Phone: "1", DailyRate: -5}),
		"invalid_daily_rate",
	))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5567999583290", NormalizePhone("+55 (67) 99958-3290"))
}
