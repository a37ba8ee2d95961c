package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/payment"
	"github.com/BruksfildServices01/marqueai/internal/storage"
)

var messages = map[string]string{
	"invalid_request":         "Dados inválidos.",
	"invalid_credentials":     "E-mail ou senha incorretos.",
	"email_already_exists":    "Este e-mail já está cadastrado.",
	"slug_already_exists":     "Este endereço já está em uso.",
	"password_too_short":      "A senha deve ter pelo menos 6 caracteres.",
	"password_mismatch":       "As senhas não conferem.",
	"invalid_email_domain":    "O domínio do e-mail informado não parece ser válido.",
	"profile_not_found":       "Perfil não encontrado.",
	"barbershop_not_found":    "Barbearia não encontrada.",
	"settings_not_found":      "Configurações não encontradas.",
	"service_not_found":       "Serviço não encontrado.",
	"professional_not_found":  "Profissional não encontrado.",
	"appointment_not_found":   "Agendamento não encontrado.",
	"notification_not_found":  "Notificação não encontrada.",
	"reference_not_found":     "Serviço ou profissional não encontrado.",
	"invalid_state":           "O agendamento não permite esta ação no status atual.",
	"invalid_action":          "Ação inválida.",
	"invalid_status":          "Status inválido.",
	"invalid_date":            "Data inválida.",
	"invalid_time":            "Horário inválido.",
	"invalid_name":            "Nome obrigatório.",
	"invalid_barbershop_name": "Nome da barbearia obrigatório.",
	"invalid_owner_name":      "Nome do responsável obrigatório.",
	"invalid_price":           "O preço não pode ser negativo.",
	"invalid_duration":        "A duração deve ser de pelo menos 1 minuto.",
	"invalid_color":           "Cor inválida. Use o formato #RRGGBB.",
	"invalid_timezone":        "Fuso horário inválido.",
	"invalid_opening_hours":   "Horário de funcionamento inválido.",
	"invalid_available_hours": "Horários disponíveis inválidos.",
	"invalid_image":           "Imagem inválida.",
	"already_subscribed":      "Você já possui o Plano Pro ativo.",
}

func statusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "invalid_credentials":
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "_already_exists"),
		code == "already_subscribed",
		code == "invalid_state":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Requisição inválida."
}

// respondError maps business errors to 4xx and everything else to a logged 500.
func respondError(c *gin.Context, err error, fallbackCode string) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.Write(c, statusFor(code), code, messageFor(code))
		return
	}

	if errors.Is(err, storage.ErrDisabled) || errors.Is(err, payment.ErrDisabled) {
		httperr.Unavailable(c)
		return
	}

	_ = c.Error(err)
	middleware.Logger(c).Error(fallbackCode, zap.Error(err))
	httperr.Internal(c, fallbackCode, "Erro interno. Tente novamente.")
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", messageFor("invalid_request"))
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}
