package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/utils"
)

// Seed populates an empty database with a demo menu and tables. Meant
// for development; it is a no-op when a menu already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("seed skipped, menu data already present")
		return nil
	}

	menu := models.Menu{Nom: "Menu Principal", Actif: true}
	if err := db.Create(&menu).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{MenuID: menu.ID, Nom: "Entrées", OrdreAffichage: 1},
		{MenuID: menu.ID, Nom: "Plats", OrdreAffichage: 2},
		{MenuID: menu.ID, Nom: "Desserts", OrdreAffichage: 3},
		{MenuID: menu.ID, Nom: "Boissons", OrdreAffichage: 4},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	dishes := []models.Dish{
		{CategorieID: categories[0].ID, Nom: "Salade César", Description: "Laitue romaine, parmesan, croûtons", Prix: 8.50, Disponible: true},
		{CategorieID: categories[0].ID, Nom: "Soupe à l'oignon", Description: "Gratinée au fromage", Prix: 7.00, Disponible: true},
		{CategorieID: categories[1].ID, Nom: "Steak frites", Description: "Entrecôte grillée, frites maison", Prix: 18.90, Disponible: true},
		{CategorieID: categories[1].ID, Nom: "Poulet rôti", Description: "Poulet fermier, légumes de saison", Prix: 15.50, Disponible: true},
		{CategorieID: categories[2].ID, Nom: "Crème brûlée", Description: "Vanille de Madagascar", Prix: 6.50, Disponible: true},
		{CategorieID: categories[2].ID, Nom: "Tarte tatin", Description: "Servie tiède, crème fraîche", Prix: 7.00, Disponible: false},
		{CategorieID: categories[3].ID, Nom: "Eau minérale", Description: "50cl", Prix: 2.50, Disponible: true},
	}
	if err := db.Create(&dishes).Error; err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	for numero := 1; numero <= 6; numero++ {
		table := models.Table{
			Numero: numero,
			QRCode: fmt.Sprintf("table_%d_%d", numero, now),
			Active: true,
		}
		if err := db.Create(&table).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Printf("seeded demo data: 1 menu, %d categories, %d dishes, 6 tables",
		len(categories), len(dishes))
	return nil
}
