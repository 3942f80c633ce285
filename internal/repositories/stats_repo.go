package repositories

import (
	"context"

	"github.com/ItsCoreyE/creatorsite/internal/models"
)

// StatsRepository defines the interface for sales stats data access
type StatsRepository interface {
	// Get retrieves the current stats document, or the default document
	// when nothing has been stored yet
	Get(ctx context.Context) (models.SalesStats, error)

	// Save replaces the stored stats document
	Save(ctx context.Context, stats models.SalesStats) error
}
