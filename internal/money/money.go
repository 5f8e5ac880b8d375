// Package money trata valores em centavos (int64). Nenhum cálculo usa ponto flutuante.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidAmount = errors.New("valor inválido")

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata centavos como moeda brasileira: 45000 -> "R$ 450,00".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, printer.Sprintf("%d", cents/100), cents%100)
}

// Parse converte "1.234,56", "150,00", "150.5" ou "R$ 80" em centavos.
func Parse(value string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimLeft(cleaned, "-")
	if cleaned == "" {
		return 0, ErrInvalidAmount
	}

	var intPart, fracPart string
	switch {
	case strings.Contains(cleaned, ","):
		idx := strings.LastIndex(cleaned, ",")
		intPart = strings.ReplaceAll(cleaned[:idx], ".", "")
		fracPart = cleaned[idx+1:]
	case strings.Contains(cleaned, "."):
		idx := strings.LastIndex(cleaned, ".")
		if tail := cleaned[idx+1:]; len(tail) > 0 && len(tail) <= 2 {
			intPart = strings.ReplaceAll(cleaned[:idx], ".", "")
			fracPart = tail
		} else {
			intPart = strings.ReplaceAll(cleaned, ".", "")
		}
	default:
		intPart = cleaned
	}

	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 || strings.ContainsAny(fracPart, ".,") {
		return 0, ErrInvalidAmount
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	reais, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	total := reais*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

const amountExpr = `(\d{1,3}(?:\.\d{3})+,\d{2}|\d+[.,]\d{2})`

// Ordem importa: padrões rotulados vencem números soltos.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)R\$\s*` + amountExpr),
	regexp.MustCompile(`(?i)valor:?\s*(?:R\$\s*)?` + amountExpr),
	regexp.MustCompile(`(?i)total:?\s*(?:R\$\s*)?` + amountExpr),
	regexp.MustCompile(amountExpr + `\s*(?:reais)?`),
}

// ExtractAmount procura o primeiro valor monetário em um texto de OCR.
func ExtractAmount(text string) (int64, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cents, err := Parse(m[1])
		if err != nil {
			continue
		}
		return cents, true
	}
	return 0, false
}
