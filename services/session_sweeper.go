package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
)

// SessionSweeper periodically removes sessions past their TTL, standing
// in for a storage-level TTL index. Validation never depends on it; the
// sweep only keeps the table from growing.
type SessionSweeper struct {
	sessions  repository.SessionRepository
	log       *logrus.Logger
	scheduler gocron.Scheduler

	// Interval between sweeps. Tune before Start.
	Interval time.Duration
}

func NewSessionSweeper(sessions repository.SessionRepository, log *logrus.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		log:      log,
		Interval: 10 * time.Minute,
	}
}

func (sw *SessionSweeper) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	sw.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(sw.Interval),
		gocron.NewTask(sw.Sweep),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	sw.log.WithField("interval", sw.Interval).Info("session sweeper started")
	return nil
}

func (sw *SessionSweeper) Stop() {
	if sw.scheduler != nil {
		_ = sw.scheduler.Shutdown()
	}
}

// Sweep deletes every session older than the TTL. Exported so tests and
// operators can trigger a pass directly.
func (sw *SessionSweeper) Sweep() {
	cutoff := time.Now().Add(-models.SessionTTL)
	removed, err := sw.sessions.DeleteStartedBefore(context.Background(), cutoff)
	if err != nil {
		sw.log.WithError(err).Error("session sweep failed")
		return
	}
	if removed > 0 {
		sw.log.WithField("removed", removed).Info("expired sessions swept")
	}
}
