package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbearia-america/agenda-api/internal/httperr"
)

// Mapeia códigos de negócio dos use cases para HTTP
func writeBusinessError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	switch code {
	case "incomplete_data":
		httperr.BadRequest(c, code, "Dados incompletos.")
	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Operação não permitida no estado atual.")
	case "invalid_image":
		httperr.BadRequest(c, code, "Imagem inválida.")
	case "slot_taken":
		httperr.Conflict(c, code, "Horário já reservado. Escolha outro horário.")
	case "subscription_already_open":
		httperr.Conflict(c, code, "Já existe uma assinatura em aberto.")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case "settings_not_found":
		httperr.NotFound(c, code, "Configuração da barbearia ausente.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "subscription_not_found":
		httperr.NotFound(c, code, "Assinatura não encontrada.")
	default:
		httperr.Internal(c, fallbackCode, fallbackMsg)
	}
}
