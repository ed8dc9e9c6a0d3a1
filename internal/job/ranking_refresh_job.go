package job

import (
	"context"
	log "log/slog"
	"photoshare/internal/pkg/consts"
	"photoshare/internal/pkg/logger"
	"photoshare/internal/pkg/redis"
	"photoshare/internal/service"
	"time"

	"github.com/google/uuid"
)

// RankingRefreshJob periodically reconciles the leaderboard snapshot
// against live engagement data.
type RankingRefreshJob struct {
	rankingSvc service.RankingService
}

func NewRankingRefreshJob(rankingSvc service.RankingService) *RankingRefreshJob {
	return &RankingRefreshJob{rankingSvc: rankingSvc}
}

func (s *RankingRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// Only one instance reconciles at a time across the cluster.
	locked, err := redis.TryLock(ctx, consts.RankingReconcileLockKey, traceID, 5*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "ranking refresh lock failed", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "ranking refresh skipped, lock held elsewhere")
		return
	}
	defer redis.UnLock(ctx, consts.RankingReconcileLockKey, traceID)

	start := time.Now()
	entries, err := s.rankingSvc.Reconcile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "ranking refresh failed", "err", err)
		return
	}
	log.InfoContext(ctx, "ranking refresh finished",
		"entries", len(entries),
		"elapsed", time.Since(start).String(),
	)
}
