package booking

import (
	"context"

	domain "github.com/barbearia-america/agenda-api/internal/domain/appointment"
	"github.com/barbearia-america/agenda-api/internal/httperr"
)

// SlotCache evita recalcular a grade a cada refresh do cliente.
// Pode ser nil (testes); a lista é consultiva de qualquer forma.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string) ([]string, bool)
	Set(ctx context.Context, barberID uint, date string, slots []string)
	Invalidate(ctx context.Context, barberID uint, date string)
}

type GetAvailability struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailability(repo domain.Repository, cache SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	if in.BarberID == 0 || in.Date == "" {
		return nil, httperr.ErrBusiness("incomplete_data")
	}
	if !domain.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date); ok {
			return slots, nil
		}
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBlockingAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.AvailableSlots(settings, booked)

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, in.Date, slots)
	}

	return slots, nil
}
