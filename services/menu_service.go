package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
)

// MenuSnapshot is the read-only projection served to clients: the active
// menu, its categories in display order, and only available dishes.
type MenuSnapshot struct {
	ID          uint               `json:"id,omitempty"`
	Nom         string             `json:"nom,omitempty"`
	Categories  []CategorySnapshot `json:"categories"`
	TotalDishes int                `json:"totalDishes"`
}

type CategorySnapshot struct {
	ID             uint          `json:"id"`
	Nom            string        `json:"nom"`
	OrdreAffichage int           `json:"ordre_affichage"`
	Dishes         []models.Dish `json:"dishes"`
}

type MenuService struct {
	menus      repository.MenuRepository
	categories repository.CategoryRepository
	dishes     repository.DishRepository
	log        *logrus.Logger
}

func NewMenuService(menus repository.MenuRepository, categories repository.CategoryRepository, dishes repository.DishRepository, log *logrus.Logger) *MenuService {
	return &MenuService{menus: menus, categories: categories, dishes: dishes, log: log}
}

// GetActiveMenu builds the snapshot on demand. Empty data is a valid,
// successful result, never an error. When several menus are active the
// first one wins and the rest are ignored.
func (s *MenuService) GetActiveMenu(ctx context.Context) (*MenuSnapshot, error) {
	menu, err := s.menus.FindFirstActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("no active menu, returning empty snapshot")
			return &MenuSnapshot{Categories: []CategorySnapshot{}}, nil
		}
		return nil, err
	}

	categories, err := s.categories.FindByMenuID(ctx, menu.ID)
	if err != nil {
		return nil, err
	}

	snapshot := &MenuSnapshot{
		ID:         menu.ID,
		Nom:        menu.Nom,
		Categories: make([]CategorySnapshot, 0, len(categories)),
	}

	for _, category := range categories {
		dishes, err := s.dishes.FindAvailableByCategoryID(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if dishes == nil {
			dishes = []models.Dish{}
		}
		snapshot.TotalDishes += len(dishes)
		// Categories with no available dish stay in the snapshot, empty.
		snapshot.Categories = append(snapshot.Categories, CategorySnapshot{
			ID:             category.ID,
			Nom:            category.Nom,
			OrdreAffichage: category.OrdreAffichage,
			Dishes:         dishes,
		})
	}

	s.log.WithFields(logrus.Fields{
		"categories": len(snapshot.Categories),
		"dishes":     snapshot.TotalDishes,
	}).Info("menu snapshot built")

	return snapshot, nil
}
