package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/repositories"
)

// StatsNotifier announces a stats upload to Discord.
type StatsNotifier interface {
	SendStats(stats models.SalesStats) error
}

// StatsService manages the sales stats document.
type StatsService struct {
	repo     repositories.StatsRepository
	notifier StatsNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(repo repositories.StatsRepository, notifier StatsNotifier, logger *slog.Logger) *StatsService {
	return &StatsService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Get retrieves the current stats document
func (s *StatsService) Get(ctx context.Context) (models.SalesStats, error) {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		return models.SalesStats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

// Save stores an uploaded stats document. The update timestamp is stamped
// server-side so clients cannot backdate it.
func (s *StatsService) Save(ctx context.Context, stats models.SalesStats) (models.SalesStats, error) {
	stats.LastUpdated = s.now().UTC().Format(time.RFC3339)
	if stats.TopItems == nil {
		stats.TopItems = []models.TopItem{}
	}

	if err := s.repo.Save(ctx, stats); err != nil {
		return models.SalesStats{}, fmt.Errorf("failed to save stats: %w", err)
	}

	s.logger.Info("stats saved",
		slog.String("period", stats.DataPeriod),
		slog.String("upload_type", stats.UploadType))
	return stats, nil
}

// Announce sends the stats notification to Discord.
func (s *StatsService) Announce(stats models.SalesStats) error {
	return s.notifier.SendStats(stats)
}
