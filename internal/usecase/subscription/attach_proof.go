package subscription

import (
	"context"
	"io"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

// ProofStore guarda o comprovante e devolve a URL pública
type ProofStore interface {
	UploadImage(ctx context.Context, folder string, r io.Reader) (string, error)
}

type AttachProof struct {
	repo  domain.Repository
	store ProofStore
	audit *audit.Dispatcher
}

func NewAttachProof(
	repo domain.Repository,
	store ProofStore,
	audit *audit.Dispatcher,
) *AttachProof {
	return &AttachProof{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

func (uc *AttachProof) Execute(
	ctx context.Context,
	userID uint,
	subscriptionID uint,
	proof io.Reader,
) (*models.Subscription, error) {

	sub, err := uc.repo.GetSubscriptionForUser(ctx, subscriptionID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("subscription_not_found")
	}

	if domain.Status(sub.Status) != domain.StatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	url, err := uc.store.UploadImage(ctx, "proofs", proof)
	if err != nil {
		return nil, err
	}

	sub.ProofURL = url
	if err := uc.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "subscription_proof_attached",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	return sub, nil
}
