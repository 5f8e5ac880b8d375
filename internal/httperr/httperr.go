package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// mensagens exibidas ao usuário por código
var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"invalid_id":             "Identificador inválido.",
	"invalid_date":           "Data inválida.",
	"invalid_date_range":     "A data final não pode ser anterior à data inicial.",
	"invalid_address":        "Endereço do serviço obrigatório.",
	"invalid_daily_rate":     "Valor da diária inválido.",
	"invalid_total":          "Valor total não confere com diária × dias.",
	"invalid_amount":         "Valor inválido.",
	"invalid_method":         "Método de pagamento inválido.",
	"invalid_status":         "Status inválido.",
	"invalid_score":          "A nota deve estar entre 1 e 5.",
	"invalid_role":           "Papel inválido.",
	"invalid_phone":          "Telefone obrigatório.",
	"invalid_name":           "Nome obrigatório.",
	"invalid_file":           "Arquivo inválido.",
	"invalid_state":          "Operação não permitida no status atual.",
	"staff_not_found":        "Diarista não encontrada.",
	"specialty_not_found":    "Especialidade não encontrada.",
	"booking_not_found":      "Agendamento não encontrado.",
	"payment_not_found":      "Pagamento não encontrado.",
	"rating_not_found":       "Avaliação não encontrada.",
	"receipt_not_found":      "Recibo não encontrado.",
	"user_not_found":         "Usuário não encontrado.",
	"notification_not_found": "Notificação não encontrada.",
	"amount_not_found":       "Nenhum valor monetário encontrado. Digite manualmente.",
	"admin_required":         "Acesso restrito a administradores.",
	"forbidden":              "Acesso negado.",
	"cannot_demote_self":     "Você não pode remover seu próprio acesso de administrador.",
	"duplicate":              "Registro já existe.",
	"email_already_exists":   "E-mail já cadastrado.",
	"storage_unavailable":    "Armazenamento de arquivos não configurado.",
	"gateway_unavailable":    "Gateway de pagamento não configurado.",
	"gateway_error":          "Erro ao consultar gateway de pagamento.",
	"proof_ref_missing":      "Pagamento sem referência de comprovante.",
	"invalid_gateway_ref":    "A referência não é um pagamento do Mercado Pago.",
	"already_issued":         "Recibo já emitido para este pagamento.",
	"invalid_credentials":    "E-mail ou senha inválidos.",
	"too_many_attempts":      "Muitas tentativas. Aguarde e tente novamente.",
	"invalid_email_domain":   "O domínio do e-mail informado não parece ser válido.",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError traduz erros de use case para a resposta HTTP.
// fallback é o código usado para erros de infraestrutura.
func FromError(c *gin.Context, err error, fallback string) {
	if IsUniqueViolation(err) {
		Write(c, http.StatusConflict, "duplicate", messages["duplicate"])
		return
	}

	kind, ok := KindOf(err)
	if !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		Internal(c, fallback, "Erro interno.")
		return
	}

	code := codeOf(err)
	msg, found := messages[code]
	if !found {
		msg = "Operação não permitida."
	}

	switch kind {
	case KindNotFound:
		NotFound(c, code, msg)
	case KindForbidden:
		Forbidden(c, code, msg)
	case KindConflict:
		Write(c, http.StatusConflict, code, msg)
	case KindUnauthorized:
		Unauthorized(c, code, msg)
	case KindRateLimited:
		Write(c, http.StatusTooManyRequests, code, msg)
	default:
		BadRequest(c, code, msg)
	}
}
