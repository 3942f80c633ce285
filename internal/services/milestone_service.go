package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/repositories"
)

// MilestoneNotifier announces a completed milestone to Discord.
type MilestoneNotifier interface {
	SendMilestone(milestone models.Milestone, progress models.MilestoneProgress) error
}

// MilestoneService manages the milestone catalog and fires notifications
// when an update marks milestones completed.
type MilestoneService struct {
	repo     repositories.MilestoneRepository
	notifier MilestoneNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewMilestoneService creates a new MilestoneService
func NewMilestoneService(repo repositories.MilestoneRepository, notifier MilestoneNotifier, logger *slog.Logger) *MilestoneService {
	return &MilestoneService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// GetAll retrieves the milestone catalog
func (s *MilestoneService) GetAll(ctx context.Context) ([]models.Milestone, error) {
	milestones, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}
	return milestones, nil
}

// ReplaceAll stores the updated milestone set and announces every milestone
// that flipped to completed. Notification is best effort: a delivery failure
// is logged but never rolls back the stored update.
func (s *MilestoneService) ReplaceAll(ctx context.Context, milestones []models.Milestone) ([]models.Milestone, error) {
	previous, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}

	wasCompleted := make(map[string]bool, len(previous))
	for _, m := range previous {
		wasCompleted[m.ID] = m.IsCompleted
	}

	for i := range milestones {
		m := &milestones[i]
		if m.IsCompleted && m.CompletedDate == "" {
			m.CompletedDate = s.now().UTC().Format(time.RFC3339)
		}
	}

	if err := s.repo.SaveAll(ctx, milestones); err != nil {
		return nil, fmt.Errorf("failed to save milestones: %w", err)
	}

	progress := models.ComputeProgress(milestones)
	for _, m := range milestones {
		if !m.IsCompleted || wasCompleted[m.ID] {
			continue
		}
		if err := s.notifier.SendMilestone(m, progress); err != nil {
			s.logger.Error("milestone notification failed",
				slog.String("milestone_id", m.ID),
				slog.Any("error", err))
		}
	}

	return milestones, nil
}

// Announce sends the notification for a single milestone, with progress
// computed from the stored catalog.
func (s *MilestoneService) Announce(ctx context.Context, milestone models.Milestone) error {
	milestones, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load milestones: %w", err)
	}
	return s.notifier.SendMilestone(milestone, models.ComputeProgress(milestones))
}
