package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	subdomain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/middleware"
	"github.com/barbearia-america/agenda-api/internal/models"
	"github.com/barbearia-america/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	availabilityUC *booking.GetAvailability
	createUC       *booking.CreateAppointment
	cancelUC       *booking.CancelAppointment
	listMineUC     *booking.ListMyAppointments
}

func NewBookingHandler(
	db *gorm.DB,
	availabilityUC *booking.GetAvailability,
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
	listMineUC *booking.ListMyAppointments,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		listMineUC:     listMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
}

// ======================================================
// CATALOG (cliente vê o preço já com desconto de assinante)
// ======================================================

type serviceView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	IncludedForSubscriber bool `json:"included_for_subscriber"`
}

func (h *BookingHandler) ListServices(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("price ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	var sub *models.Subscription
	var active models.Subscription
	err := h.db.
		Where("user_id = ? AND status = ?", userID, "active").
		First(&active).Error
	if err == nil {
		sub = &active
	}

	out := make([]serviceView, 0, len(services))
	for i := range services {
		svc := services[i]
		out = append(out, serviceView{
			ID:                    svc.ID,
			Name:                  svc.Name,
			Description:           svc.Description,
			DurationMin:           svc.DurationMin,
			Price:                 subdomain.ResolvePrice(&svc, sub),
			IncludedForSubscriber: svc.IncludedForSubscriber,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro e data obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID: uint(barberID),
			Date:     dateStr,
		},
	)
	if err != nil {
		writeBusinessError(c, err, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "incomplete_data", "Dados incompletos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateAppointmentInput{
			UserID:    userID,
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			StartTime: req.StartTime,
		},
	)
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_appointment", "Erro ao agendar.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// MY APPOINTMENTS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
