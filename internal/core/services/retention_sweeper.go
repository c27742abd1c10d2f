package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
)

// purgeTarget is one entity type the sweeper can expire items from. The
// entity services implement it against their mirrors.
type purgeTarget interface {
	purgeName() string

	// purgeReady reports whether the mirror behind the target has finished
	// its initial load. Unloaded targets are skipped for the round.
	purgeReady() bool

	// expiredIDs returns the IDs of recycle bin items deleted before cutoff.
	expiredIDs(cutoff time.Time) []string

	// purge permanently deletes one expired item.
	purge(ctx context.Context, id string) error
}

// retentionSweeper permanently deletes recycle bin items older than the
// retention window. It runs on a fixed interval and can be kicked early when
// something is soft-deleted. Sweeps never overlap; a kick arriving during a
// sweep coalesces into at most one follow-up round.
type retentionSweeper struct {
	retention   time.Duration
	interval    time.Duration
	callTimeout time.Duration
	targets     []purgeTarget
	logger      *slog.Logger

	kick     chan struct{}
	sweeping atomic.Bool
}

func newRetentionSweeper(
	retention, interval, callTimeout time.Duration,
	targets []purgeTarget,
	logger *slog.Logger,
) *retentionSweeper {
	return &retentionSweeper{
		retention:   retention,
		interval:    interval,
		callTimeout: callTimeout,
		targets:     targets,
		logger:      logger,
		kick:        make(chan struct{}, 1),
	}
}

var _ portssvc.RetentionSweeperSvc = (*retentionSweeper)(nil)

// Run blocks until ctx is done, sweeping once at startup, then on every
// interval tick and on every kick.
func (s *retentionSweeper) Run(ctx context.Context) {
	s.logger.Info("retention sweeper started",
		slog.Duration("retention", s.retention),
		slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retention sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.kick:
			s.sweep(ctx)
		}
	}
}

// Kick requests a sweep outside the regular interval. Non-blocking; when a
// kick is already queued the request folds into it.
func (s *retentionSweeper) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *retentionSweeper) sweep(ctx context.Context) {
	if !s.sweeping.CompareAndSwap(false, true) {
		return
	}
	defer s.sweeping.Store(false)

	cutoff := time.Now().UTC().Add(-s.retention)
	for _, target := range s.targets {
		if ctx.Err() != nil {
			return
		}
		if !target.purgeReady() {
			s.logger.Warn("sweep skipped, mirror still loading", slog.String("target", target.purgeName()))
			continue
		}

		ids := target.expiredIDs(cutoff)
		if len(ids) == 0 {
			continue
		}
		purged := 0
		for _, id := range ids {
			if err := s.purgeOne(ctx, target, id); err != nil {
				s.logger.Error("failed to purge expired item",
					slog.String("target", target.purgeName()),
					slog.String("id", id),
					slog.String("error", err.Error()))
				continue
			}
			purged++
		}
		s.logger.Info("sweep round finished",
			slog.String("target", target.purgeName()),
			slog.Int("expired", len(ids)),
			slog.Int("purged", purged))
	}
}

func (s *retentionSweeper) purgeOne(ctx context.Context, target purgeTarget, id string) error {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return target.purge(callCtx, id)
}
