package models

// OrderItem is immutable once its order exists. Name and Price are
// snapshots of the dish taken at order time, never re-read from the
// catalog.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	Order    Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DishID   uint    `gorm:"not null" json:"dish_id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Comment  string  `gorm:"type:text" json:"comment"`
}
