package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/services"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// StatsHandler serves and updates the sales stats document
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// StatsRequest represents an uploaded stats document
type StatsRequest struct {
	TotalRevenue     float64          `json:"totalRevenue" validate:"gte=0"`
	TotalSales       int64            `json:"totalSales" validate:"gte=0"`
	GrowthPercentage float64          `json:"growthPercentage"`
	DataPeriod       string           `json:"dataPeriod" validate:"required"`
	TopItems         []models.TopItem `json:"topItems" validate:"dive"`
	UploadType       string           `json:"uploadType" validate:"omitempty,oneof=single growth"`
}

// Get returns the current stats document
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Get(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to load stats")
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, stats)
}

// Save stores an uploaded stats document
func (h *StatsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	saved, err := h.service.Save(r.Context(), models.SalesStats{
		TotalRevenue:     req.TotalRevenue,
		TotalSales:       req.TotalSales,
		GrowthPercentage: req.GrowthPercentage,
		DataPeriod:       req.DataPeriod,
		TopItems:         req.TopItems,
		UploadType:       req.UploadType,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to save stats")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, saved)
}
