package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quizcash/quizcash/internal/config"
	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/service/gameservice"
)

var processingRounds sync.Map

// Settler resumes settlement of an answered round; the game service
// implements it.
type Settler interface {
	Settle(ctx context.Context, attempt *domain.GameAttempt)
}

// Service is the housekeeping sweep over game rounds. It resumes answered
// rounds whose payout credit never reached the ledger, and it closes rounds
// that were staked but never answered once they exceed the stale window.
type Service struct {
	attemptRepo   gameservice.AttemptRepo
	settler       Settler
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	staleTTL      time.Duration
}

func New(cfg *config.Config, attemptRepo gameservice.AttemptRepo, settler Settler) *Service {
	return &Service{
		attemptRepo:   attemptRepo,
		settler:       settler,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		staleTTL:      cfg.StaleRoundTTL,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	s.resumeUnsettled(ctx)
	s.expireStale(ctx)
}

func (s *Service) resumeUnsettled(ctx context.Context) {
	attempts, err := s.attemptRepo.FindUnsettled(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch unsettled rounds", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, attempt := range attempts {
		attempt := attempt

		if _, loaded := processingRounds.LoadOrStore(attempt.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingRounds.Delete(attempt.ID)
				s.settler.Settle(ctx, &attempt)
				return nil
			})
			if err != nil {
				processingRounds.Delete(attempt.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error resuming settlement", zap.Error(err))
	}
}

func (s *Service) expireStale(ctx context.Context) {
	cutoff := time.Now().Add(-s.staleTTL)
	attempts, err := s.attemptRepo.FindStaleStaked(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch stale rounds", zap.Error(err))
		return
	}

	for _, attempt := range attempts {
		// abandoned round: closed with no credit, the stake stays debited
		if err := s.attemptRepo.Expire(ctx, attempt.ID); err != nil {
			zap.L().Error("Failed to expire stale round", zap.Int64("roundID", attempt.ID), zap.Error(err))
			continue
		}
		zap.L().Info("Expired stale round", zap.Int64("roundID", attempt.ID), zap.Int("userID", attempt.UserID))
	}
}
