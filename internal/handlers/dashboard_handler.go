package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
	"github.com/barbearia-america/agenda-api/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats do painel: receita conta apenas agendamentos concluídos
func (h *DashboardHandler) Stats(c *gin.Context) {
	today := timezone.Today()

	var revenue float64
	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar estatísticas.")
		return
	}

	var activeSubscriptions int64
	h.db.Model(&models.Subscription{}).
		Where("status = ?", "active").
		Count(&activeSubscriptions)

	var clients int64
	h.db.Model(&models.User{}).
		Where("role = ?", "client").
		Count(&clients)

	var todayAppointments int64
	h.db.Model(&models.Appointment{}).
		Where("date = ?", today).
		Count(&todayAppointments)

	c.JSON(http.StatusOK, gin.H{
		"revenue":              revenue,
		"active_subscriptions": activeSubscriptions,
		"clients":              clients,
		"today_appointments":   todayAppointments,
	})
}

// ListAppointments lista a agenda de todos os barbeiros em um intervalo
func (h *DashboardHandler) ListAppointments(c *gin.Context) {
	from := c.DefaultQuery("from", timezone.Today())
	to := c.DefaultQuery("to", from)

	var aps []models.Appointment
	if err := h.db.
		Preload("User").
		Preload("Barber").
		Preload("Service").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}
