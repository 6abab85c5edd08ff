package subscription

import (
	"context"

	"github.com/barbearia-america/agenda-api/internal/models"
)

type Repository interface {
	GetSettings(
		ctx context.Context,
	) (*models.Settings, error)

	GetSubscription(
		ctx context.Context,
		subscriptionID uint,
	) (*models.Subscription, error)

	GetSubscriptionForUser(
		ctx context.Context,
		subscriptionID uint,
		userID uint,
	) (*models.Subscription, error)

	// LatestSubscriptionForUser retorna a assinatura mais recente do cliente
	// (nil quando nunca assinou)
	LatestSubscriptionForUser(
		ctx context.Context,
		userID uint,
	) (*models.Subscription, error)

	HasOpenSubscription(
		ctx context.Context,
		userID uint,
	) (bool, error)

	CreateSubscription(
		ctx context.Context,
		sub *models.Subscription,
	) error

	UpdateSubscription(
		ctx context.Context,
		sub *models.Subscription,
	) error

	// ApproveExclusively ativa a assinatura e expira qualquer outra ativa do
	// mesmo cliente na mesma transação (invariante: uma ativa por cliente)
	ApproveExclusively(
		ctx context.Context,
		sub *models.Subscription,
	) error

	ListSubscriptions(
		ctx context.Context,
	) ([]models.Subscription, error)

	ExpireOverdue(
		ctx context.Context,
	) (int64, error)
}
