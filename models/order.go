package models

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusServed    = "SERVED"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusServed:    true,
	OrderStatusPaid:      true,
	OrderStatusCancelled: true,
}

// IsValidOrderStatus reports whether s is a member of the status
// enumeration. No transition graph is enforced anywhere.
func IsValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

type Order struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	TableID uint  `gorm:"index;not null" json:"table_id"`
	Table   Table `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	// SessionID is kept as a plain string, not a foreign key. The session
	// may expire or be deleted after the order is placed and the order
	// must survive that.
	SessionID  string      `gorm:"type:varchar(36);index;not null" json:"session_id"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string      `gorm:"type:varchar(20);index;not null;default:'PENDING'" json:"status"`
	Note       string      `gorm:"type:text" json:"note"`
	CreatedAt  time.Time   `gorm:"index;not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}
