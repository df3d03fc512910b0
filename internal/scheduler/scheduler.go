package scheduler

import (
	"context"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type housekeeper interface {
	Cleanup(ctx context.Context) (domain.CleanupResult, error)
}

// Scheduler periodically purges pending accounts whose activation window
// has passed and sessions that have expired.
type Scheduler struct {
	accounts housekeeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	accounts housekeeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		accounts: accounts,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	res, err := s.accounts.Cleanup(ctx)
	if err != nil {
		s.logger.Error("housekeeping failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if res.PendingAccounts > 0 || res.Sessions > 0 {
		s.logger.Info("housekeeping done",
			logger.Int64("pending_accounts_removed", res.PendingAccounts),
			logger.Int64("sessions_removed", res.Sessions),
		)
	}
}
