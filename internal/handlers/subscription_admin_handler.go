package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/httpresp"
	"github.com/barbearia-america/agenda-api/internal/middleware"
	ucSubscription "github.com/barbearia-america/agenda-api/internal/usecase/subscription"
)

type SubscriptionAdminHandler struct {
	repo domain.Repository

	approveUC *ucSubscription.Approve
	cancelUC  *ucSubscription.Cancel
}

func NewSubscriptionAdminHandler(
	repo domain.Repository,
	approveUC *ucSubscription.Approve,
	cancelUC *ucSubscription.Cancel,
) *SubscriptionAdminHandler {
	return &SubscriptionAdminHandler{
		repo:      repo,
		approveUC: approveUC,
		cancelUC:  cancelUC,
	}
}

func (h *SubscriptionAdminHandler) List(c *gin.Context) {
	subs, err := h.repo.ListSubscriptions(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Erro ao listar assinaturas.")
		return
	}

	httpresp.List(c, subs)
}

func (h *SubscriptionAdminHandler) Approve(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	sub, err := h.approveUC.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_approve_subscription", "Erro ao aprovar assinatura.")
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionAdminHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	sub, err := h.cancelUC.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_cancel_subscription", "Erro ao cancelar assinatura.")
		return
	}

	c.JSON(http.StatusOK, sub)
}
