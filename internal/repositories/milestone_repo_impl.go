package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// milestonesKey holds the full milestone catalog as one JSON array.
const milestonesKey = "ugc-milestones"

// MilestoneRepositoryImpl implements MilestoneRepository on Redis
type MilestoneRepositoryImpl struct {
	client *redis.Client
}

// NewMilestoneRepository creates a new milestone repository
func NewMilestoneRepository(client *redis.Client) MilestoneRepository {
	return &MilestoneRepositoryImpl{client: client}
}

// GetAll retrieves the milestone catalog. On first read the default catalog
// is stored so later partial updates have a base to merge into.
func (r *MilestoneRepositoryImpl) GetAll(ctx context.Context) ([]models.Milestone, error) {
	data, err := r.client.Get(ctx, milestonesKey).Result()
	if errors.Is(err, redis.Nil) {
		defaults := models.DefaultMilestones()
		if err := r.SaveAll(ctx, defaults); err != nil {
			return nil, fmt.Errorf("failed to seed milestones: %w", err)
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch milestones: %w", err)
	}

	var milestones []models.Milestone
	if err := json.Unmarshal([]byte(data), &milestones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal milestones: %w", err)
	}

	return milestones, nil
}

// SaveAll replaces the stored milestone set
func (r *MilestoneRepositoryImpl) SaveAll(ctx context.Context, milestones []models.Milestone) error {
	data, err := json.Marshal(milestones)
	if err != nil {
		return fmt.Errorf("failed to marshal milestones: %w", err)
	}

	if err := r.client.Set(ctx, milestonesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store milestones: %w", err)
	}

	return nil
}
