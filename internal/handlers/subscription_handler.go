package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-america/agenda-api/internal/config"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/middleware"
	"github.com/barbearia-america/agenda-api/internal/models"
	ucSubscription "github.com/barbearia-america/agenda-api/internal/usecase/subscription"
)

// Comprovante maior que isso não é imagem de transferência
const maxProofSize = 10 << 20 // 10 MiB

type SubscriptionHandler struct {
	db     *gorm.DB
	config *config.Config

	subscribeUC *ucSubscription.Subscribe
	proofUC     *ucSubscription.AttachProof
	cancelUC    *ucSubscription.Cancel
}

func NewSubscriptionHandler(
	db *gorm.DB,
	cfg *config.Config,
	subscribeUC *ucSubscription.Subscribe,
	proofUC *ucSubscription.AttachProof,
	cancelUC *ucSubscription.Cancel,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		db:          db,
		config:      cfg,
		subscribeUC: subscribeUC,
		proofUC:     proofUC,
		cancelUC:    cancelUC,
	}
}

// ======================================================
// PLAN INFO + MY SUBSCRIPTION
// ======================================================

func (h *SubscriptionHandler) GetMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configuração da barbearia ausente.")
		return
	}

	var sub *models.Subscription
	var latest models.Subscription
	err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latest).Error
	if err == nil {
		sub = &latest
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly_price": settings.MonthlySubscriptionPrice,
		"subscription":  sub,
		"payment": gin.H{
			"method":   "pix",
			"pix_key":  h.config.PixKey,
			"pix_code": h.config.PixCode,
		},
	})
}

// ======================================================
// SUBSCRIBE (pendente até aprovação manual)
// ======================================================

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	sub, err := h.subscribeUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err, "failed_to_subscribe", "Erro ao criar assinatura.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"subscription": sub,
		"payment": gin.H{
			"method":   "pix",
			"pix_key":  h.config.PixKey,
			"pix_code": h.config.PixCode,
		},
	})
}

// ======================================================
// PROOF UPLOAD
// ======================================================

func (h *SubscriptionHandler) UploadProof(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	file, err := c.FormFile("proof")
	if err != nil {
		httperr.BadRequest(c, "missing_proof", "Comprovante obrigatório.")
		return
	}
	if file.Size > maxProofSize {
		httperr.BadRequest(c, "proof_too_large", "Comprovante muito grande.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_proof", "Erro ao ler comprovante.")
		return
	}
	defer src.Close()

	sub, err := h.proofUC.Execute(c.Request.Context(), userID, uint(id), src)
	if err != nil {
		writeBusinessError(c, err, "failed_to_upload_proof", "Erro ao enviar comprovante.")
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ======================================================
// CANCEL (próprio cliente)
// ======================================================

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	sub, err := h.cancelUC.ExecuteForUser(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_cancel_subscription", "Erro ao cancelar assinatura.")
		return
	}

	c.JSON(http.StatusOK, sub)
}
