package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	MenuRepository interface {
		Create(ctx context.Context, menu *models.Menu) error
		FindByID(ctx context.Context, id uint) (*models.Menu, error)
		// FindFirstActive returns the oldest active menu. More than one
		// active menu is tolerated, the rest are ignored.
		FindFirstActive(ctx context.Context) (*models.Menu, error)
		Update(ctx context.Context, menu *models.Menu) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) FindFirstActive(ctx context.Context) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.WithContext(ctx).
		Where("actif = ?", true).
		Order("id asc").
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) Update(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}
