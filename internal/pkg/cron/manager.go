package cron

import (
	log "log/slog"
	"photoshare/internal/api/config"
	"photoshare/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	rankingRefreshJob *job.RankingRefreshJob
}

func NewCronManager(rankingRefreshJob *job.RankingRefreshJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		rankingRefreshJob: rankingRefreshJob,
	}
}

func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Ranking.RefreshSpec
	if spec == "" {
		spec = "@hourly"
	}
	if _, err := s.engine.AddJob(spec, s.rankingRefreshJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
