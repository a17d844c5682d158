package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	CategoryRepository interface {
		Create(ctx context.Context, category *models.Category) error
		FindByID(ctx context.Context, id uint) (*models.Category, error)
		// FindByMenuID returns categories ordered by ordre_affichage
		// ascending, ties broken by insertion order.
		FindByMenuID(ctx context.Context, menuID uint) ([]models.Category, error)
		FindAll(ctx context.Context) ([]models.Category, error)
		Update(ctx context.Context, category *models.Category) error
		Delete(ctx context.Context, id uint) (int64, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByMenuID(ctx context.Context, menuID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("ordre_affichage asc, id asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Order("ordre_affichage asc, id asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	return res.RowsAffected, res.Error
}
