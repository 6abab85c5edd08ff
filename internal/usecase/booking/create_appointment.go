package booking

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	subdomain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Dados obrigatórios
	// --------------------------------------------------
	if in.UserID == 0 || in.BarberID == 0 || in.ServiceID == 0 ||
		in.Date == "" || in.StartTime == "" {
		return nil, httperr.ErrBusiness("incomplete_data")
	}

	if !domain.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Serviço e barbeiro ativos
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active || svc.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 3. Horário de término (aritmética de minutos, mesmo dia)
	// --------------------------------------------------
	end, err := domain.AddMinutes(in.StartTime, svc.DurationMin)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Preço com desconto de assinante (consulta fresca)
	// --------------------------------------------------
	sub, err := uc.repo.ActiveSubscription(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	price := subdomain.ResolvePrice(svc, sub)

	// --------------------------------------------------
	// 5. Gravação — o índice único do banco decide o conflito
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:    in.UserID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   end,
		Price:     price,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      in.Date,
					"start":     in.StartTime,
				},
			})
		}
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.BarberID, in.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
