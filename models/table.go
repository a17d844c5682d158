package models

// Table is the physical table a QR code is bound to. Immutable once
// created except for the active flag.
type Table struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Numero int    `gorm:"uniqueIndex;not null" json:"numero"`
	QRCode string `gorm:"column:qr_code;type:varchar(255);uniqueIndex;not null" json:"qr_code"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}
