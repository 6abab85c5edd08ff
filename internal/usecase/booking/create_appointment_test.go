package booking

import (
	"context"
	"testing"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	subdomain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepo struct {
	getSettingsFn        func(ctx context.Context) (*models.Settings, error)
	getServiceFn         func(ctx context.Context, id uint) (*models.Service, error)
	getBarberFn          func(ctx context.Context, id uint) (*models.Barber, error)
	activeSubscriptionFn func(ctx context.Context, userID uint) (*models.Subscription, error)
	createAppointmentFn  func(ctx context.Context, ap *models.Appointment) error
	listBlockingFn       func(ctx context.Context, barberID uint, date string) ([]models.Appointment, error)
	getForUserFn         func(ctx context.Context, appointmentID, userID uint) (*models.Appointment, error)
	getForBarberFn       func(ctx context.Context, appointmentID, barberID uint) (*models.Appointment, error)
	updateFn             func(ctx context.Context, ap *models.Appointment) error
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(ctx)
	}
	return &models.Settings{OpeningTime: "09:00", ClosingTime: "19:00", SlotIntervalMin: 30}, nil
}

func (m *mockRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if m.getServiceFn != nil {
		return m.getServiceFn(ctx, id)
	}
	return &models.Service{ID: id, Name: "Corte", DurationMin: 30, Price: 50, Active: true}, nil
}

func (m *mockRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	if m.getBarberFn != nil {
		return m.getBarberFn(ctx, id)
	}
	return &models.Barber{ID: id, Name: "João", Active: true}, nil
}

func (m *mockRepo) ActiveSubscription(ctx context.Context, userID uint) (*models.Subscription, error) {
	if m.activeSubscriptionFn != nil {
		return m.activeSubscriptionFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.createAppointmentFn != nil {
		return m.createAppointmentFn(ctx, ap)
	}
	ap.ID = 1
	return nil
}

func (m *mockRepo) GetAppointmentForUser(ctx context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, appointmentID, userID)
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (m *mockRepo) GetAppointmentForBarber(ctx context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	if m.getForBarberFn != nil {
		return m.getForBarberFn(ctx, appointmentID, barberID)
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, ap)
	}
	return nil
}

func (m *mockRepo) ListBlockingAppointments(ctx context.Context, barberID uint, date string) ([]models.Appointment, error) {
	if m.listBlockingFn != nil {
		return m.listBlockingFn(ctx, barberID, date)
	}
	return []models.Appointment{}, nil
}

func (m *mockRepo) ListAppointmentsForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}

func (m *mockRepo) ListAppointmentsForBarberPeriod(ctx context.Context, barberID uint, fromDate, toDate string) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:    1,
		BarberID:  2,
		ServiceID: 3,
		Date:      "2025-03-10",
		StartTime: "14:00",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointmentHappyPath(t *testing.T) {
	uc := NewCreateAppointment(&mockRepo{}, testDispatcher(), nil)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	if ap.StartTime != "14:00" || ap.EndTime != "14:30" {
		t.Fatalf("janela = %s-%s, want 14:00-14:30", ap.StartTime, ap.EndTime)
	}
	if ap.Price != 50 {
		t.Fatalf("price = %v, want 50", ap.Price)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", ap.Status)
	}
}

func TestCreateAppointmentIncompleteData(t *testing.T) {
	uc := NewCreateAppointment(&mockRepo{}, testDispatcher(), nil)

	cases := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
	}{
		{"sem usuário", func(in *CreateAppointmentInput) { in.UserID = 0 }},
		{"sem barbeiro", func(in *CreateAppointmentInput) { in.BarberID = 0 }},
		{"sem serviço", func(in *CreateAppointmentInput) { in.ServiceID = 0 }},
		{"sem data", func(in *CreateAppointmentInput) { in.Date = "" }},
		{"sem horário", func(in *CreateAppointmentInput) { in.StartTime = "" }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, "incomplete_data") {
				t.Fatalf("esperava incomplete_data, veio %v", err)
			}
		})
	}
}

func TestCreateAppointmentInvalidDateOrTime(t *testing.T) {
	uc := NewCreateAppointment(&mockRepo{}, testDispatcher(), nil)

	in := validInput()
	in.Date = "10/03/2025"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("esperava invalid_date_or_time, veio %v", err)
	}

	in = validInput()
	in.StartTime = "25:99"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("esperava invalid_date_or_time, veio %v", err)
	}
}

func TestCreateAppointmentInactiveService(t *testing.T) {
	repo := &mockRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return &models.Service{ID: id, DurationMin: 30, Price: 50, Active: false}, nil
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("esperava service_not_found, veio %v", err)
	}
}

func TestCreateAppointmentInactiveBarber(t *testing.T) {
	repo := &mockRepo{
		getBarberFn: func(ctx context.Context, id uint) (*models.Barber, error) {
			return &models.Barber{ID: id, Active: false}, nil
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("esperava barber_not_found, veio %v", err)
	}
}

func TestCreateAppointmentSubscriberPaysZero(t *testing.T) {
	repo := &mockRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return &models.Service{ID: id, DurationMin: 30, Price: 50, Active: true, IncludedForSubscriber: true}, nil
		},
		activeSubscriptionFn: func(ctx context.Context, userID uint) (*models.Subscription, error) {
			return &models.Subscription{Status: string(subdomain.StatusActive)}, nil
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if ap.Price != 0 {
		t.Fatalf("price = %v, want 0 para assinante", ap.Price)
	}
}

func TestCreateAppointmentSubscriberServiceNotIncluded(t *testing.T) {
	repo := &mockRepo{
		activeSubscriptionFn: func(ctx context.Context, userID uint) (*models.Subscription, error) {
			return &models.Subscription{Status: string(subdomain.StatusActive)}, nil
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if ap.Price != 50 {
		t.Fatalf("price = %v, want 50 para serviço fora do plano", ap.Price)
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := &mockRepo{
		createAppointmentFn: func(ctx context.Context, ap *models.Appointment) error {
			return httperr.ErrBusiness("slot_taken")
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	if _, err := uc.Execute(context.Background(), validInput()); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("esperava slot_taken, veio %v", err)
	}
}

func TestCreateAppointmentLongServiceEndTime(t *testing.T) {
	repo := &mockRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return &models.Service{ID: id, DurationMin: 90, Price: 80, Active: true}, nil
		},
	}
	uc := NewCreateAppointment(repo, testDispatcher(), nil)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if ap.EndTime != "15:30" {
		t.Fatalf("end = %q, want 15:30", ap.EndTime)
	}
}
