package models

import "time"

type Menu struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nom       string    `gorm:"type:varchar(255);not null" json:"nom"`
	Actif     bool      `gorm:"index;not null;default:true" json:"actif"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
