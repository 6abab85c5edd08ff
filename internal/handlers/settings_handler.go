package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	OpeningTime     *string `json:"opening_time,omitempty"` // HH:MM
	ClosingTime     *string `json:"closing_time,omitempty"` // HH:MM
	SlotIntervalMin *int    `json:"slot_interval_min,omitempty"`

	MonthlySubscriptionPrice *float64 `json:"monthly_subscription_price,omitempty"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configuração da barbearia ausente.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configuração da barbearia ausente.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	opening := settings.OpeningTime
	closing := settings.ClosingTime

	if req.OpeningTime != nil {
		opening = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		closing = *req.ClosingTime
	}

	openMin, err := domain.ParseHM(opening)
	if err != nil {
		httperr.BadRequest(c, "invalid_opening_time", "Horário de abertura inválido.")
		return
	}
	closeMin, err := domain.ParseHM(closing)
	if err != nil {
		httperr.BadRequest(c, "invalid_closing_time", "Horário de fechamento inválido.")
		return
	}
	if openMin >= closeMin {
		httperr.BadRequest(c, "invalid_hours", "Abertura deve ser antes do fechamento.")
		return
	}

	settings.OpeningTime = opening
	settings.ClosingTime = closing

	if req.SlotIntervalMin != nil {
		if *req.SlotIntervalMin <= 0 {
			httperr.BadRequest(c, "invalid_interval", "Intervalo deve ser positivo.")
			return
		}
		settings.SlotIntervalMin = *req.SlotIntervalMin
	}

	if req.MonthlySubscriptionPrice != nil {
		if *req.MonthlySubscriptionPrice < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		settings.MonthlySubscriptionPrice = *req.MonthlySubscriptionPrice
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Erro ao salvar configuração.")
		return
	}

	c.JSON(http.StatusOK, settings)
}
