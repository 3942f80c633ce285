package models

// TopItem is one entry in the best-sellers list attached to a stats upload.
type TopItem struct {
	Name    string  `json:"name"`
	Sales   int64   `json:"sales"`
	Revenue float64 `json:"revenue,omitempty"`
}

// SalesStats is the document shown on the public stats page and announced
// to Discord after an admin upload.
type SalesStats struct {
	TotalRevenue     float64   `json:"totalRevenue"`
	TotalSales       int64     `json:"totalSales"`
	GrowthPercentage float64   `json:"growthPercentage"`
	DataPeriod       string    `json:"dataPeriod"`
	LastUpdated      string    `json:"lastUpdated"`
	TopItems         []TopItem `json:"topItems"`
	UploadType       string    `json:"uploadType,omitempty"` // "single" or "growth"
}

// DefaultSalesStats is returned when no document has been stored yet.
func DefaultSalesStats() SalesStats {
	return SalesStats{
		TotalRevenue:     56799,
		TotalSales:       2653,
		GrowthPercentage: 2579,
		LastUpdated:      "Default Data",
		DataPeriod:       "All Time",
		TopItems:         []TopItem{},
	}
}
