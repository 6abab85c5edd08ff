package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbearia-america/agenda-api/internal/domain/subscription"
	"github.com/barbearia-america/agenda-api/internal/httperr"
	"github.com/barbearia-america/agenda-api/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

func (r *SubscriptionGormRepository) GetSettings(
	ctx context.Context,
) (*models.Settings, error) {

	var settings models.Settings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("settings_not_found")
		}
		return nil, err
	}
	return &settings, nil
}

func (r *SubscriptionGormRepository) GetSubscription(
	ctx context.Context,
	subscriptionID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&sub, subscriptionID).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionGormRepository) GetSubscriptionForUser(
	ctx context.Context,
	subscriptionID uint,
	userID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", subscriptionID, userID).
		First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionGormRepository) LatestSubscriptionForUser(
	ctx context.Context,
	userID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *SubscriptionGormRepository) HasOpenSubscription(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND status IN ?", userID, []string{"pending", "active"}).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SubscriptionGormRepository) CreateSubscription(
	ctx context.Context,
	sub *models.Subscription,
) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionGormRepository) UpdateSubscription(
	ctx context.Context,
	sub *models.Subscription,
) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// ApproveExclusively mantém a invariante de uma assinatura ativa por cliente:
// qualquer outra ativa do mesmo usuário expira na mesma transação da aprovação
func (r *SubscriptionGormRepository) ApproveExclusively(
	ctx context.Context,
	sub *models.Subscription,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ? AND status = ? AND id <> ?", sub.UserID, "active", sub.ID).
			Update("status", "expired").Error; err != nil {
			return err
		}

		return tx.Save(sub).Error
	})
}

func (r *SubscriptionGormRepository) ListSubscriptions(
	ctx context.Context,
) ([]models.Subscription, error) {

	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *SubscriptionGormRepository) ExpireOverdue(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", "active", time.Now()).
		Update("status", "expired")

	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*SubscriptionGormRepository)(nil)
