package models

// Milestone categories
const (
	CategoryRevenue      = "revenue"
	CategorySales        = "sales"
	CategoryItems        = "items"
	CategoryCollectibles = "collectibles"
)

// Milestone is a single tracked achievement on the public milestones page.
type Milestone struct {
	ID            string `json:"id" validate:"required"`
	Category      string `json:"category" validate:"required,oneof=revenue sales items collectibles"`
	Target        int64  `json:"target"`
	Description   string `json:"description" validate:"required"`
	IsCompleted   bool   `json:"isCompleted"`
	CompletedDate string `json:"completedDate,omitempty"`
	AssetID       string `json:"assetId,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
}

// MilestoneProgress summarises completion counts across categories. It is
// computed from a milestone list and rendered into notification embeds.
type MilestoneProgress struct {
	RevenueCompleted      int `json:"revenue_completed"`
	RevenueTotal          int `json:"revenue_total"`
	SalesCompleted        int `json:"sales_completed"`
	SalesTotal            int `json:"sales_total"`
	ItemsCompleted        int `json:"items_completed"`
	ItemsTotal            int `json:"items_total"`
	CollectiblesCompleted int `json:"collectibles_completed"`
	CollectiblesTotal     int `json:"collectibles_total"`
	TotalCompleted        int `json:"total_completed"`
	TotalMilestones       int `json:"total_milestones"`
	CompletionPercentage  int `json:"completion_percentage"`
}

// CategoryCompleted returns the completed/total pair for a category.
func (p MilestoneProgress) CategoryCompleted(category string) (int, int) {
	switch category {
	case CategorySales:
		return p.SalesCompleted, p.SalesTotal
	case CategoryItems:
		return p.ItemsCompleted, p.ItemsTotal
	case CategoryCollectibles:
		return p.CollectiblesCompleted, p.CollectiblesTotal
	default:
		return p.RevenueCompleted, p.RevenueTotal
	}
}

// ComputeProgress tallies completion counts for a milestone list.
func ComputeProgress(milestones []Milestone) MilestoneProgress {
	var p MilestoneProgress
	for _, m := range milestones {
		completed := 0
		if m.IsCompleted {
			completed = 1
		}
		switch m.Category {
		case CategorySales:
			p.SalesTotal++
			p.SalesCompleted += completed
		case CategoryItems:
			p.ItemsTotal++
			p.ItemsCompleted += completed
		case CategoryCollectibles:
			p.CollectiblesTotal++
			p.CollectiblesCompleted += completed
		default:
			p.RevenueTotal++
			p.RevenueCompleted += completed
		}
		p.TotalMilestones++
		p.TotalCompleted += completed
	}
	if p.TotalMilestones > 0 {
		p.CompletionPercentage = p.TotalCompleted * 100 / p.TotalMilestones
	}
	return p
}

// DefaultMilestones is the catalog seeded into storage on first read.
func DefaultMilestones() []Milestone {
	return []Milestone{
		{ID: "rev-1k", Category: CategoryRevenue, Target: 1000, Description: "Earned 1,000 Robux"},
		{ID: "rev-5k", Category: CategoryRevenue, Target: 5000, Description: "Earned 5,000 Robux"},
		{ID: "rev-10k", Category: CategoryRevenue, Target: 10000, Description: "Earned 10,000 Robux"},
		{ID: "rev-25k", Category: CategoryRevenue, Target: 25000, Description: "Earned 25,000 Robux"},
		{ID: "rev-50k", Category: CategoryRevenue, Target: 50000, Description: "Earned 50,000 Robux"},
		{ID: "rev-75k", Category: CategoryRevenue, Target: 75000, Description: "Earned 75,000 Robux"},
		{ID: "rev-100k", Category: CategoryRevenue, Target: 100000, Description: "Earned 100,000 Robux"},
		{ID: "rev-250k", Category: CategoryRevenue, Target: 250000, Description: "Earned 250,000 Robux"},
		{ID: "rev-500k", Category: CategoryRevenue, Target: 500000, Description: "Earned 500,000 Robux"},
		{ID: "rev-1m", Category: CategoryRevenue, Target: 1000000, Description: "Earned 1,000,000 Robux"},

		{ID: "sales-100", Category: CategorySales, Target: 100, Description: "100 total item sales"},
		{ID: "sales-250", Category: CategorySales, Target: 250, Description: "250 total item sales"},
		{ID: "sales-500", Category: CategorySales, Target: 500, Description: "500 total item sales"},
		{ID: "sales-1k", Category: CategorySales, Target: 1000, Description: "1,000 total item sales"},
		{ID: "sales-2.5k", Category: CategorySales, Target: 2500, Description: "2,500 total item sales"},
		{ID: "sales-5k", Category: CategorySales, Target: 5000, Description: "5,000 total item sales"},
		{ID: "sales-10k", Category: CategorySales, Target: 10000, Description: "10,000 total item sales"},
		{ID: "sales-25k", Category: CategorySales, Target: 25000, Description: "25,000 total item sales"},
		{ID: "sales-50k", Category: CategorySales, Target: 50000, Description: "50,000 total item sales"},

		{ID: "items-1", Category: CategoryItems, Target: 1, Description: "1st UGC item published"},
		{ID: "items-5", Category: CategoryItems, Target: 5, Description: "5 UGC items published"},
		{ID: "items-10", Category: CategoryItems, Target: 10, Description: "10 UGC items published"},
		{ID: "items-20", Category: CategoryItems, Target: 20, Description: "20 UGC items published"},
		{ID: "items-50", Category: CategoryItems, Target: 50, Description: "50 UGC items published"},
		{ID: "items-100", Category: CategoryItems, Target: 100, Description: "100 UGC items published"},
	}
}
