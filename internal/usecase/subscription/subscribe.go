package subscription

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
	"github.com/barbearia-america/agenda-api/internal/timezone"
)

type Subscribe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubscribe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Subscribe {
	return &Subscribe{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria a solicitação pendente; o pagamento é transferência manual
// (código PIX exibido ao cliente) e a ativação depende do admin
func (uc *Subscribe) Execute(
	ctx context.Context,
	userID uint,
) (*models.Subscription, error) {

	open, err := uc.repo.HasOpenSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, httperr.ErrBusiness("subscription_already_open")
	}

	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	start, end := domain.NewWindow(timezone.Now())

	sub := &models.Subscription{
		UserID:        userID,
		Status:        string(domain.InitialStatus()),
		MonthlyPrice:  settings.MonthlySubscriptionPrice,
		StartDate:     &start,
		EndDate:       &end,
		PaymentMethod: "pix",
	}

	if err := uc.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "subscription_requested",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
