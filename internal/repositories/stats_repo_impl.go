package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// statsKey holds the single JSON stats document.
const statsKey = "ugc-sales-data"

// StatsRepositoryImpl implements StatsRepository on Redis
type StatsRepositoryImpl struct {
	client *redis.Client
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(client *redis.Client) StatsRepository {
	return &StatsRepositoryImpl{client: client}
}

// Get retrieves the current stats document. A missing key is not an error:
// the site has defaults to show before the first upload.
func (r *StatsRepositoryImpl) Get(ctx context.Context) (models.SalesStats, error) {
	data, err := r.client.Get(ctx, statsKey).Result()
	if errors.Is(err, redis.Nil) {
		return models.DefaultSalesStats(), nil
	}
	if err != nil {
		return models.SalesStats{}, fmt.Errorf("failed to fetch stats: %w", err)
	}

	var stats models.SalesStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return models.SalesStats{}, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	if stats.TopItems == nil {
		stats.TopItems = []models.TopItem{}
	}

	return stats, nil
}

// Save replaces the stored stats document. No TTL: the document lives until
// the next upload overwrites it.
func (r *StatsRepositoryImpl) Save(ctx context.Context, stats models.SalesStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.client.Set(ctx, statsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store stats: %w", err)
	}

	return nil
}
