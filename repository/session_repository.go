package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

type (
	SessionRepository interface {
		Create(ctx context.Context, session *models.ClientSession) error
		FindBySessionID(ctx context.Context, sessionID string) (*models.ClientSession, error)
		FindAll(ctx context.Context) ([]models.ClientSession, error)
		// DeleteBySessionID returns the number of rows removed so callers
		// can distinguish a missing session from a successful delete.
		DeleteBySessionID(ctx context.Context, sessionID string) (int64, error)
		DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.ClientSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.ClientSession, error) {
	var session models.ClientSession
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Where("session_id = ?", sessionID).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAll(ctx context.Context) ([]models.ClientSession, error) {
	var sessions []models.ClientSession
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Order("started_at desc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) DeleteBySessionID(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.ClientSession{})
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("started_at < ?", cutoff).
		Delete(&models.ClientSession{})
	return res.RowsAffected, res.Error
}
