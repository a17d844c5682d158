package models

import "time"

// SessionTTL is the absolute lifetime of a client session. Expiry is
// counted from StartedAt, never extended.
const SessionTTL = 24 * time.Hour

type ClientSession struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SessionID string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"session_id"`
	TableID   uint      `gorm:"index;not null" json:"table_id"`
	Table     Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table"`
	StartedAt time.Time `gorm:"index;not null" json:"started_at"`
}

// Expired reports whether the session has passed its absolute TTL.
func (s *ClientSession) Expired(now time.Time) bool {
	return now.Sub(s.StartedAt) > SessionTTL
}
