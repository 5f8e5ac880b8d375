package notify

import (
	"fmt"
	"strings"
)

const ccPrefix = "📁 *[CÓPIA]* "

type bookingText struct {
	StaffName   string
	Specialty   string
	Address     string
	Start       string
	End         string
	Amount      string
	Description string
}

func bookingCoordinatorMessage(b bookingText) string {
	return strings.Join([]string{
		"🗓️ *NOVO AGENDAMENTO CONFIRMADO*",
		"",
		"👩 *Diarista:* " + b.StaffName,
		"💼 *Especialidade:* " + b.Specialty,
		"📍 *Operação:* " + b.Address,
		"📅 *Período:* " + b.Start + " até " + b.End,
		"💵 *Valor a Receber:* " + b.Amount,
		"",
		"Agendamento registrado no sistema.",
	}, "\n")
}

func bookingStaffMessage(b bookingText) string {
	lines := []string{
		"✅ *NOVO AGENDAMENTO CONFIRMADO*",
		"",
		"💼 *Especialidade:* " + b.Specialty,
		"📍 *Operação:* " + b.Address,
		"📅 *Período:* " + b.Start + " até " + b.End,
	}
	if b.Description != "" {
		lines = append(lines, "📄 *Descrição:* "+b.Description)
	}
	lines = append(lines,
		"💵 *Valor a Receber:* "+b.Amount,
		"",
		"Confirme seu comparecimento respondendo a esta mensagem. 🙏",
	)
	return strings.Join(lines, "\n")
}

type paymentText struct {
	StaffName string
	Amount    string
	Method    string
	Date      string
}

func paymentCoordinatorMessage(p paymentText) string {
	return strings.Join([]string{
		"💰 *PAGAMENTO REALIZADO*",
		"",
		"*Diarista:* " + p.StaffName,
		"*Valor:* " + p.Amount,
		"*Método:* " + p.Method,
		"*Data:* " + p.Date,
		"",
		"✨ Que haja prosperidade e abundância para todos! ✨",
	}, "\n")
}

func paymentStaffMessage(p paymentText) string {
	return strings.Join([]string{
		"✅ *PAGAMENTO CONFIRMADO*",
		"",
		"Seu pagamento de " + p.Amount + " foi realizado com sucesso!",
		"*Método:* " + p.Method,
		"*Data:* " + p.Date,
		"",
		"✨ Que haja prosperidade e abundância em sua vida! ✨",
		"Obrigado pelo seu trabalho! 🙏",
	}, "\n")
}

func ratingMessage(score int, comment string) string {
	lines := []string{
		strings.Repeat("⭐", score) + " *NOVA AVALIAÇÃO RECEBIDA*",
		"",
		fmt.Sprintf("Você recebeu uma avaliação de %d estrelas!", score),
	}
	if comment != "" {
		lines = append(lines, "*Comentário:* "+comment)
	}
	lines = append(lines, "", "Continue com o excelente trabalho!")
	return strings.Join(lines, "\n")
}

func receiptMessage(amount, date, url string) string {
	lines := []string{
		"🧾 *RECIBO DISPONÍVEL*",
		"",
		"Recibo do pagamento de " + amount + " em " + date + ".",
	}
	if url != "" {
		lines = append(lines, url)
	}
	return strings.Join(lines, "\n")
}
