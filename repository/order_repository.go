package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	OrderRepository interface {
		// Create persists the order and its items as one unit.
		Create(ctx context.Context, order *models.Order) error
		FindByID(ctx context.Context, id uint) (*models.Order, error)
		// FindBySessionID returns orders newest first.
		FindBySessionID(ctx context.Context, sessionID string) ([]models.Order, error)
		UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	// A single Create inserts the order row and its item rows inside one
	// GORM transaction, which keeps the all-or-nothing contract.
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindBySessionID(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at desc, id desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
