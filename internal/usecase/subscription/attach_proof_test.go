package subscription

import (
	"context"
	"io"
	"strings"
	"testing"

	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

type fakeStore struct {
	url string
	err error
}

func (s *fakeStore) UploadImage(ctx context.Context, folder string, r io.Reader) (string, error) {
	return s.url, s.err
}

func TestAttachProof(t *testing.T) {
	var saved *models.Subscription
	repo := &mockRepo{
		getForUserFn: func(ctx context.Context, id, userID uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, UserID: userID, Status: string(domain.StatusPending)}, nil
		},
		updateFn: func(ctx context.Context, sub *models.Subscription) error {
			saved = sub
			return nil
		},
	}
	store := &fakeStore{url: "https://cdn.example.com/proofs/abc.webp"}
	uc := NewAttachProof(repo, store, testDispatcher())

	sub, err := uc.Execute(context.Background(), 1, 5, strings.NewReader("img"))
	if err != nil {
		t.Fatal(err)
	}

	if sub.ProofURL != store.url {
		t.Fatalf("proof = %q, want %q", sub.ProofURL, store.url)
	}
	if saved == nil {
		t.Fatal("assinatura não foi persistida")
	}
}

func TestAttachProofOnlyPending(t *testing.T) {
	repo := &mockRepo{
		getForUserFn: func(ctx context.Context, id, userID uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, Status: string(domain.StatusActive)}, nil
		},
	}
	uc := NewAttachProof(repo, &fakeStore{}, testDispatcher())

	if _, err := uc.Execute(context.Background(), 1, 5, strings.NewReader("img")); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("esperava invalid_state, veio %v", err)
	}
}

func TestAttachProofUploadFailure(t *testing.T) {
	repo := &mockRepo{
		getForUserFn: func(ctx context.Context, id, userID uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, Status: string(domain.StatusPending)}, nil
		},
	}
	store := &fakeStore{err: httperr.ErrBusiness("invalid_image")}
	uc := NewAttachProof(repo, store, testDispatcher())

	if _, err := uc.Execute(context.Background(), 1, 5, strings.NewReader("img")); !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("esperava invalid_image, veio %v", err)
	}
}
