package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
)

// SessionService issues and validates the short-lived client sessions a
// QR scan creates.
type SessionService struct {
	tables   repository.TableRepository
	sessions repository.SessionRepository
	log      *logrus.Logger
}

func NewSessionService(tables repository.TableRepository, sessions repository.SessionRepository, log *logrus.Logger) *SessionService {
	return &SessionService{tables: tables, sessions: sessions, log: log}
}

// CreateFromToken resolves the scanned QR token to an active table and
// opens a fresh session bound to it.
func (s *SessionService) CreateFromToken(ctx context.Context, qrCode string) (*models.ClientSession, error) {
	table, err := s.tables.FindActiveByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidQRCode
		}
		return nil, err
	}

	session := &models.ClientSession{
		SessionID: uuid.NewString(),
		TableID:   table.ID,
		StartedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	session.Table = *table

	s.log.WithFields(logrus.Fields{
		"session_id": session.SessionID,
		"table_id":   table.ID,
		"numero":     table.Numero,
	}).Info("client session created from QR scan")

	return session, nil
}

// Validate fetches the session and checks its age against the absolute
// 24h TTL. The storage-level sweep removes expired rows eventually, but
// its timing is not guaranteed, so the elapsed-time check here is
// authoritative.
func (s *SessionService) Validate(ctx context.Context, sessionID string) (*models.ClientSession, error) {
	session, err := s.sessions.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// End deletes the session. Not idempotent: ending an already-ended
// session fails with ErrSessionNotFound.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	rows, err := s.sessions.DeleteBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	s.log.WithField("session_id", sessionID).Info("session ended")
	return nil
}

// ListAll returns every stored session, newest first. Staff view.
func (s *SessionService) ListAll(ctx context.Context) ([]models.ClientSession, error) {
	return s.sessions.FindAll(ctx)
}
