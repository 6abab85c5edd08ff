package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/middleware"
	"github.com/barbearia-america/agenda-api/internal/timezone"
	"github.com/barbearia-america/agenda-api/internal/usecase/booking"
)

// Painel do barbeiro: agenda própria e marcação de presença.
// O barbeiro é resolvido pelo vínculo explícito do login (claim barberId),
// nunca por casamento de nome ou e-mail.

type BarberPanelHandler struct {
	agendaUC   *booking.BarberAgenda
	completeUC *booking.CompleteAppointment
	noShowUC   *booking.MarkNoShow
}

func NewBarberPanelHandler(
	agendaUC *booking.BarberAgenda,
	completeUC *booking.CompleteAppointment,
	noShowUC *booking.MarkNoShow,
) *BarberPanelHandler {
	return &BarberPanelHandler{
		agendaUC:   agendaUC,
		completeUC: completeUC,
		noShowUC:   noShowUC,
	}
}

func barberFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextBarberID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func (h *BarberPanelHandler) Agenda(c *gin.Context) {
	barberID, ok := barberFromContext(c)
	if !ok {
		httperr.Forbidden(c, "barber_link_missing", "Login sem vínculo com barbeiro.")
		return
	}

	from := c.DefaultQuery("from", timezone.Today())
	to := c.DefaultQuery("to", from)

	out, err := h.agendaUC.Execute(c.Request.Context(), barberID, from, to)
	if err != nil {
		writeBusinessError(c, err, "failed_to_list_agenda", "Erro ao listar agenda.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BarberPanelHandler) Complete(c *gin.Context) {
	barberID, ok := barberFromContext(c)
	if !ok {
		httperr.Forbidden(c, "barber_link_missing", "Login sem vínculo com barbeiro.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_complete", "Erro ao concluir.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BarberPanelHandler) NoShow(c *gin.Context) {
	barberID, ok := barberFromContext(c)
	if !ok {
		httperr.Forbidden(c, "barber_link_missing", "Login sem vínculo com barbeiro.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.noShowUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_mark_no_show", "Erro ao marcar falta.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
