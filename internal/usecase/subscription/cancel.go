package subscription

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

// Execute é o cancelamento pelo admin (qualquer assinatura)
func (uc *Cancel) Execute(
	ctx context.Context,
	adminID uint,
	subscriptionID uint,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	return uc.cancel(ctx, adminID, sub)
}

// ExecuteForUser é o cancelamento pelo próprio cliente
func (uc *Cancel) ExecuteForUser(
	ctx context.Context,
	userID uint,
	subscriptionID uint,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscriptionForUser(ctx, subscriptionID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	return uc.cancel(ctx, userID, sub)
}

func (uc *Cancel) cancel(
	ctx context.Context,
	actorID uint,
	sub *models.Subscription,
) (*models.Subscription, error) {

	if err := domain.Cancel(sub); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "subscription_cancelled",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
