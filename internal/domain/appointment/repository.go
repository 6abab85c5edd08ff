package appointment

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/models"
)

type Repository interface {
	// -------- Settings (registro único) --------
	GetSettings(
		ctx context.Context,
	) (*models.Settings, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	// -------- Subscription (consulta fresca no momento da reserva) --------
	ActiveSubscription(
		ctx context.Context,
		userID uint,
	) (*models.Subscription, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / listings --------
	ListBlockingAppointments(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForBarberPeriod(
		ctx context.Context,
		barberID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)
}
