package repositories

import (
	"context"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// MilestoneRepository defines the interface for milestone data access
type MilestoneRepository interface {
	// GetAll retrieves all milestones, seeding the default catalog when
	// nothing has been stored yet
	GetAll(ctx context.Context) ([]models.Milestone, error)

	// SaveAll replaces the stored milestone set
	SaveAll(ctx context.Context, milestones []models.Milestone) error
}
