package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbearia-america/agenda-api/internal/audit"
	"github.com/barbearia-america/agenda-api/internal/cache"
	"github.com/barbearia-america/agenda-api/internal/config"
	"github.com/barbearia-america/agenda-api/internal/handlers"
	infraRepo "github.com/barbearia-america/agenda-api/internal/infra/repository"
	"github.com/barbearia-america/agenda-api/internal/infra/storage"
	"github.com/barbearia-america/agenda-api/internal/middleware"
	ucBooking "github.com/barbearia-america/agenda-api/internal/usecase/booking"
	ucSubscription "github.com/barbearia-america/agenda-api/internal/usecase/subscription"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)
	slotCache := cache.NewAvailabilityCache(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	noShowUC := ucBooking.NewMarkNoShow(
		bookingRepo,
		auditDispatcher,
	)

	listMineUC := ucBooking.NewListMyAppointments(bookingRepo)
	barberAgendaUC := ucBooking.NewBarberAgenda(bookingRepo)

	// ======================================================
	// USE CASES — SUBSCRIPTION
	// ======================================================
	subscribeUC := ucSubscription.NewSubscribe(subscriptionRepo, auditDispatcher)
	attachProofUC := ucSubscription.NewAttachProof(subscriptionRepo, uploader, auditDispatcher)
	approveSubscriptionUC := ucSubscription.NewApprove(subscriptionRepo, auditDispatcher)
	cancelSubscriptionUC := ucSubscription.NewCancel(subscriptionRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		listMineUC,
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		db,
		cfg,
		subscribeUC,
		attachProofUC,
		cancelSubscriptionUC,
	)

	barberPanelHandler := handlers.NewBarberPanelHandler(
		barberAgendaUC,
		completeAppointmentUC,
		noShowUC,
	)

	serviceAdminHandler := handlers.NewServiceAdminHandler(db)
	barberAdminHandler := handlers.NewBarberAdminHandler(db, uploader)
	settingsHandler := handlers.NewSettingsHandler(db)
	subscriptionAdminHandler := handlers.NewSubscriptionAdminHandler(
		subscriptionRepo,
		approveSubscriptionUC,
		cancelSubscriptionUC,
	)
	userAdminHandler := handlers.NewUserAdminHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKING (qualquer usuário logado)
			// ------------------------------
			secured.GET("/services", bookingHandler.ListServices)
			secured.GET("/barbers", bookingHandler.ListBarbers)
			secured.GET("/availability", bookingHandler.Availability)

			secured.POST("/appointments", bookingHandler.Create)
			secured.GET("/me/appointments", bookingHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// SUBSCRIPTION (cliente)
			// ------------------------------
			secured.GET("/me/subscription", subscriptionHandler.GetMine)
			secured.POST("/me/subscription", subscriptionHandler.Subscribe)
			secured.POST("/me/subscription/:id/proof", subscriptionHandler.UploadProof)
			secured.PATCH("/me/subscription/:id/cancel", subscriptionHandler.Cancel)

			// ------------------------------
			// PAINEL DO BARBEIRO
			// ------------------------------
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireRole(middleware.RoleBarber))
			{
				barber.GET("/agenda", barberPanelHandler.Agenda)
				barber.PATCH("/appointments/:id/complete", barberPanelHandler.Complete)
				barber.PATCH("/appointments/:id/no-show", barberPanelHandler.NoShow)
			}

			// ------------------------------
			// PAINEL ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/services", serviceAdminHandler.List)
				admin.POST("/services", serviceAdminHandler.Create)
				admin.PATCH("/services/:id", serviceAdminHandler.Update)

				admin.GET("/barbers", barberAdminHandler.List)
				admin.POST("/barbers", barberAdminHandler.Create)
				admin.PATCH("/barbers/:id", barberAdminHandler.Update)
				admin.POST("/barbers/:id/photo", barberAdminHandler.UploadPhoto)

				admin.GET("/settings", settingsHandler.Get)
				admin.PATCH("/settings", settingsHandler.Update)

				admin.GET("/subscriptions", subscriptionAdminHandler.List)
				admin.PATCH("/subscriptions/:id/approve", subscriptionAdminHandler.Approve)
				admin.PATCH("/subscriptions/:id/cancel", subscriptionAdminHandler.Cancel)

				admin.GET("/clients", userAdminHandler.ListClients)
				admin.POST("/users", userAdminHandler.CreateStaff)

				admin.GET("/dashboard/stats", dashboardHandler.Stats)
				admin.GET("/appointments", dashboardHandler.ListAppointments)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
