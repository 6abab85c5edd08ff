package subscription

import (
	"context"
	"testing"

	"github.com/barbearia-america/agenda-api/internal/audit"
	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepo struct {
	getSettingsFn         func(ctx context.Context) (*models.Settings, error)
	getSubscriptionFn     func(ctx context.Context, id uint) (*models.Subscription, error)
	getForUserFn          func(ctx context.Context, id, userID uint) (*models.Subscription, error)
	latestForUserFn       func(ctx context.Context, userID uint) (*models.Subscription, error)
	hasOpenFn             func(ctx context.Context, userID uint) (bool, error)
	createFn              func(ctx context.Context, sub *models.Subscription) error
	updateFn              func(ctx context.Context, sub *models.Subscription) error
	approveExclusivelyFn  func(ctx context.Context, sub *models.Subscription) error
	expireOverdueFn       func(ctx context.Context) (int64, error)
}

var _ domain.Repository = (*mockRepo)(nil)

func (m *mockRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(ctx)
	}
	return &models.Settings{MonthlySubscriptionPrice: 99.90}, nil
}

func (m *mockRepo) GetSubscription(ctx context.Context, id uint) (*models.Subscription, error) {
	if m.getSubscriptionFn != nil {
		return m.getSubscriptionFn(ctx, id)
	}
	return nil, httperr.ErrBusiness("subscription_not_found")
}

func (m *mockRepo) GetSubscriptionForUser(ctx context.Context, id, userID uint) (*models.Subscription, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, id, userID)
	}
	return nil, httperr.ErrBusiness("subscription_not_found")
}

func (m *mockRepo) LatestSubscriptionForUser(ctx context.Context, userID uint) (*models.Subscription, error) {
	if m.latestForUserFn != nil {
		return m.latestForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRepo) HasOpenSubscription(ctx context.Context, userID uint) (bool, error) {
	if m.hasOpenFn != nil {
		return m.hasOpenFn(ctx, userID)
	}
	return false, nil
}

func (m *mockRepo) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	sub.ID = 1
	return nil
}

func (m *mockRepo) UpdateSubscription(ctx context.Context, sub *models.Subscription) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, sub)
	}
	return nil
}

func (m *mockRepo) ApproveExclusively(ctx context.Context, sub *models.Subscription) error {
	if m.approveExclusivelyFn != nil {
		return m.approveExclusivelyFn(ctx, sub)
	}
	return nil
}

func (m *mockRepo) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return []models.Subscription{}, nil
}

func (m *mockRepo) ExpireOverdue(ctx context.Context) (int64, error) {
	if m.expireOverdueFn != nil {
		return m.expireOverdueFn(ctx)
	}
	return 0, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

// ======================================================
// TESTS
// ======================================================

func TestSubscribe(t *testing.T) {
	uc := NewSubscribe(&mockRepo{}, testDispatcher())

	sub, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if sub.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", sub.Status)
	}
	if sub.MonthlyPrice != 99.90 {
		t.Fatalf("price = %v, want 99.90", sub.MonthlyPrice)
	}
	if sub.PaymentMethod != "pix" {
		t.Fatalf("payment = %q, want pix", sub.PaymentMethod)
	}
	if sub.StartDate == nil || sub.EndDate == nil {
		t.Fatal("vigência não foi preenchida")
	}
	if got := sub.EndDate.Sub(*sub.StartDate).Hours(); got != float64(domain.WindowDays)*24 {
		t.Fatalf("janela de %v horas, want %d dias", got, domain.WindowDays)
	}
}

func TestSubscribeAlreadyOpen(t *testing.T) {
	repo := &mockRepo{
		hasOpenFn: func(ctx context.Context, userID uint) (bool, error) {
			return true, nil
		},
	}
	uc := NewSubscribe(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), 1); !httperr.IsBusiness(err, "subscription_already_open") {
		t.Fatalf("esperava subscription_already_open, veio %v", err)
	}
}

func TestApprove(t *testing.T) {
	var savedExclusively *models.Subscription
	repo := &mockRepo{
		getSubscriptionFn: func(ctx context.Context, id uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, UserID: 1, Status: string(domain.StatusPending)}, nil
		},
		approveExclusivelyFn: func(ctx context.Context, sub *models.Subscription) error {
			savedExclusively = sub
			return nil
		},
	}
	uc := NewApprove(repo, testDispatcher())

	sub, err := uc.Execute(context.Background(), 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Status != string(domain.StatusActive) {
		t.Fatalf("status = %q, want active", sub.Status)
	}
	if savedExclusively == nil {
		t.Fatal("gravação exclusiva não foi chamada")
	}
}

func TestApproveNonPending(t *testing.T) {
	repo := &mockRepo{
		getSubscriptionFn: func(ctx context.Context, id uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, Status: string(domain.StatusActive)}, nil
		},
	}
	uc := NewApprove(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), 9, 5); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("esperava invalid_state, veio %v", err)
	}
}

func TestApproveNotFound(t *testing.T) {
	uc := NewApprove(&mockRepo{}, testDispatcher())

	if _, err := uc.Execute(context.Background(), 9, 404); !httperr.IsBusiness(err, "subscription_not_found") {
		t.Fatalf("esperava subscription_not_found, veio %v", err)
	}
}

func TestCancelScopes(t *testing.T) {
	repo := &mockRepo{
		getSubscriptionFn: func(ctx context.Context, id uint) (*models.Subscription, error) {
			return &models.Subscription{ID: id, Status: string(domain.StatusActive)}, nil
		},
		getForUserFn: func(ctx context.Context, id, userID uint) (*models.Subscription, error) {
			if userID != 1 {
				return nil, httperr.ErrBusiness("subscription_not_found")
			}
			return &models.Subscription{ID: id, UserID: userID, Status: string(domain.StatusPending)}, nil
		},
	}
	uc := NewCancel(repo, testDispatcher())

	// admin cancela qualquer assinatura
	sub, err := uc.Execute(context.Background(), 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", sub.Status)
	}

	// cliente cancela a própria
	sub, err = uc.ExecuteForUser(context.Background(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", sub.Status)
	}

	// cliente não enxerga assinatura de outro
	if _, err := uc.ExecuteForUser(context.Background(), 2, 5); !httperr.IsBusiness(err, "subscription_not_found") {
		t.Fatalf("esperava subscription_not_found, veio %v", err)
	}
}

func TestExpireOverdue(t *testing.T) {
	repo := &mockRepo{
		expireOverdueFn: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
	}
	uc := NewExpireOverdue(repo)

	n, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
}
