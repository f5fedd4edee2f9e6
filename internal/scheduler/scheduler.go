package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionExpirer drops capture sessions idle for longer than ttl.
type SessionExpirer interface {
	ExpireSessions(now time.Time, ttl time.Duration) int
}

type SessionSweeper struct {
	expirer  SessionExpirer
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionSweeper(expirer SessionExpirer, ttl, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{expirer: expirer, ttl: ttl, interval: interval, logger: logger, now: time.Now}
}

func (s *SessionSweeper) Start(ctx context.Context) {
	if s.expirer == nil || s.ttl <= 0 {
		s.logger.Warn("session sweeper skipped", zap.Duration("ttl", s.ttl))
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run()
			}
		}
	}()
}

func (s *SessionSweeper) run() int {
	removed := s.expirer.ExpireSessions(s.now(), s.ttl)
	if removed > 0 {
		s.logger.Info("expired idle sessions", zap.Int("count", removed))
	}
	return removed
}
