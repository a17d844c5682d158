package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	DishRepository interface {
		Create(ctx context.Context, dish *models.Dish) error
		FindByID(ctx context.Context, id uint) (*models.Dish, error)
		FindAll(ctx context.Context) ([]models.Dish, error)
		FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Dish, error)
		FindAvailableByCategoryID(ctx context.Context, categoryID uint) ([]models.Dish, error)
		Update(ctx context.Context, dish *models.Dish) error
		Delete(ctx context.Context, id uint) (int64, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) FindByID(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindAll(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.WithContext(ctx).Order("nom asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.WithContext(ctx).
		Where("categorie_id = ?", categoryID).
		Order("id asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) FindAvailableByCategoryID(ctx context.Context, categoryID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.WithContext(ctx).
		Where("categorie_id = ? AND disponible = ?", categoryID, true).
		Order("id asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) Update(ctx context.Context, dish *models.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Dish{}, id)
	return res.RowsAffected, res.Error
}
