package subscription

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

type Approve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApprove(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Approve {
	return &Approve{
		repo:  repo,
		audit: audit,
	}
}

// Execute ativa uma assinatura pendente após conferência manual do
// comprovante. A gravação expira qualquer outra ativa do mesmo cliente.
func (uc *Approve) Execute(
	ctx context.Context,
	adminID uint,
	subscriptionID uint,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	if err := domain.Approve(sub); err != nil {
		return nil, err
	}

	if err := uc.repo.ApproveExclusively(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "subscription_approved",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
