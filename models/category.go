package models

import "time"

type Category struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	MenuID         uint      `gorm:"index;not null" json:"menu_id"`
	Menu           Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Nom            string    `gorm:"type:varchar(255);not null" json:"nom"`
	OrdreAffichage int       `gorm:"index;not null;default:0" json:"ordre_affichage"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
