package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/config"
	"github.com/yeremiapane/restaurant-qr/database"
	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/router"
	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if cfg.SeedOnStart {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding database: %v", err)
		}
	}

	// Background purge of expired sessions. Validation checks elapsed
	// time itself; this only keeps the table small.
	sweeper := services.NewSessionSweeper(repository.NewSessionRepository(db), utils.InfoLogger)
	sweeper.Interval = cfg.SweepInterval
	if err := sweeper.Start(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to start session sweeper: %v", err)
	}
	defer sweeper.Stop()

	r := router.SetupRouter(db)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Table{},
		&models.ClientSession{},
		&models.Menu{},
		&models.Category{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
