package models

import "time"

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategorieID uint      `gorm:"index;not null" json:"categorie_id"`
	Categorie   Category  `gorm:"foreignKey:CategorieID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Nom         string    `gorm:"type:varchar(255);index;not null" json:"nom"`
	Description string    `gorm:"type:text" json:"description"`
	Prix        float64   `gorm:"type:decimal(10,2);not null" json:"prix"`
	Disponible  bool      `gorm:"index;not null;default:true" json:"disponible"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
