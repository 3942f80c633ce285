package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/services"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// NotificationHandler triggers Discord webhook announcements on demand
type NotificationHandler struct {
	milestones *services.MilestoneService
	stats      *services.StatsService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(milestones *services.MilestoneService, stats *services.StatsService) *NotificationHandler {
	return &NotificationHandler{
		milestones: milestones,
		stats:      stats,
	}
}

// MilestoneWebhookRequest represents a milestone announcement trigger
type MilestoneWebhookRequest struct {
	Milestone models.Milestone `json:"milestone" validate:"required"`
}

// NotificationResponse confirms a delivered announcement
type NotificationResponse struct {
	Success bool `json:"success"`
}

// MilestoneWebhook announces a single milestone completion
func (h *NotificationHandler) MilestoneWebhook(w http.ResponseWriter, r *http.Request) {
	var req MilestoneWebhookRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Milestone.ID == "" {
		pkghttp.WriteBadRequest(w, "milestone is required")
		return
	}
	if err := ValidateRequest(req.Milestone); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.milestones.Announce(r.Context(), req.Milestone); err != nil {
		writeNotificationError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, NotificationResponse{Success: true})
}

// StatsWebhook announces an uploaded stats document
func (h *NotificationHandler) StatsWebhook(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	err := h.stats.Announce(models.SalesStats{
		TotalRevenue:     req.TotalRevenue,
		TotalSales:       req.TotalSales,
		GrowthPercentage: req.GrowthPercentage,
		DataPeriod:       req.DataPeriod,
		TopItems:         req.TopItems,
		UploadType:       req.UploadType,
	})
	if err != nil {
		writeNotificationError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, NotificationResponse{Success: true})
}

// writeNotificationError maps announcement failures onto the error taxonomy.
// Delivery details go in the response body so the admin panel can show what
// went wrong.
func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotConfigured):
		pkghttp.WriteErrorWithDetails(w, http.StatusInternalServerError,
			"not_configured", "Discord webhook is not configured", err.Error())
	case errors.Is(err, models.ErrDeliveryFailed):
		pkghttp.WriteErrorWithDetails(w, http.StatusInternalServerError,
			"delivery_failed", "Failed to deliver Discord notification", err.Error())
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}
