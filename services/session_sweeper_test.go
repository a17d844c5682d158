package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/utils"
)

func TestSweepRemovesOnlyExpired(t *testing.T) {
	db := setupTestDB(t)

	table := models.Table{Numero: 1, QRCode: "table_1_123", Active: true}
	db.Create(&table)

	db.Create(&models.ClientSession{
		SessionID: "stale",
		TableID:   table.ID,
		StartedAt: time.Now().Add(-25 * time.Hour),
	})
	db.Create(&models.ClientSession{
		SessionID: "fresh",
		TableID:   table.ID,
		StartedAt: time.Now(),
	})

	sweeper := NewSessionSweeper(repository.NewSessionRepository(db), utils.SilentLogger())
	sweeper.Sweep()

	var remaining []models.ClientSession
	db.Find(&remaining)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].SessionID)
}
