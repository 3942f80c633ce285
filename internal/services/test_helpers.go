package services

import (
	"context"
	"errors"
	"sync"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// Shared in-memory fakes for service tests.

type fakeStatsRepo struct {
	mu     sync.Mutex
	stats  *models.SalesStats
	getErr error
	setErr error
}

func (f *fakeStatsRepo) Get(ctx context.Context) (models.SalesStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return models.SalesStats{}, f.getErr
	}
	if f.stats == nil {
		return models.DefaultSalesStats(), nil
	}
	return *f.stats, nil
}

func (f *fakeStatsRepo) Save(ctx context.Context, stats models.SalesStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.stats = &stats
	return nil
}

type fakeMilestoneRepo struct {
	mu         sync.Mutex
	milestones []models.Milestone
	getErr     error
	setErr     error
}

func (f *fakeMilestoneRepo) GetAll(ctx context.Context) ([]models.Milestone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.milestones == nil {
		return models.DefaultMilestones(), nil
	}
	return f.milestones, nil
}

func (f *fakeMilestoneRepo) SaveAll(ctx context.Context, milestones []models.Milestone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.milestones = milestones
	return nil
}

// fakeNotifier records announced milestones and stats uploads.
type fakeNotifier struct {
	mu         sync.Mutex
	milestones []models.Milestone
	stats      []models.SalesStats
	err        error
}

func (f *fakeNotifier) SendMilestone(m models.Milestone, _ models.MilestoneProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.milestones = append(f.milestones, m)
	return nil
}

func (f *fakeNotifier) SendStats(s models.SalesStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.stats = append(f.stats, s)
	return nil
}

var errRepoDown = errors.New("repo unavailable")
