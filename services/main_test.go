package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Table{},
		&models.ClientSession{},
		&models.Menu{},
		&models.Category{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newSessionService(db *gorm.DB) *SessionService {
	return NewSessionService(
		repository.NewTableRepository(db),
		repository.NewSessionRepository(db),
		utils.SilentLogger(),
	)
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(
		repository.NewMenuRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewDishRepository(db),
		utils.SilentLogger(),
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		newSessionService(db),
		repository.NewDishRepository(db),
		repository.NewOrderRepository(db),
		utils.SilentLogger(),
	)
}
