package booking

import (
	"context"

	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	"github.com/barbearia-america/agenda-api/internal/dto"
	"github.com/barbearia-america/agenda-api/internal/httperr"
)

type BarberAgenda struct {
	repo domain.Repository
}

func NewBarberAgenda(repo domain.Repository) *BarberAgenda {
	return &BarberAgenda{repo: repo}
}

// Execute lista a agenda do barbeiro em um intervalo de datas (inclusivo)
func (uc *BarberAgenda) Execute(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]dto.AppointmentListDTO, error) {

	if !domain.IsValidDate(fromDate) || !domain.IsValidDate(toDate) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForBarberPeriod(
		ctx,
		barberID,
		fromDate,
		toDate,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.User.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
