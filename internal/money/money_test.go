package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 450,00", FormatBRL(45000))
	assert.Equal(t, "R$ 150,00", FormatBRL(15000))
	assert.Equal(t, "R$ 0,05", FormatBRL(5))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(123456))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-1000))
}

func TestParse(t *testing.T) {
	cases := map[string]int64{
		"1.234,56":  123456,
		"150,00":    15000,
		"150,5":     15050,
		"150.50":    15050,
		"R$ 80":     8000,
		"1.500":     150000,
		"-10,00":    -1000,
		"R$ 0,99":   99,
		"12.345.678": 1234567800,
	}

	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "abc", "1,234,56"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"Comprovante PIX\nValor: R$ 1.234,56\nData 10/03", 123456},
		{"TOTAL: 450,00", 45000},
		{"pago 89.90 reais", 8990},
		{"Transferência de R$150,00 para Maria", 15000},
		{"Ref 12,34 - valor: 99,90", 9990},
	}

	for _, tc := range cases {
		got, ok := ExtractAmount(tc.text)
		require.True(t, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}

	_, ok := ExtractAmount("sem números aqui")
	assert.False(t, ok)
}
