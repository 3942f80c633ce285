package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/services"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// MilestoneHandler serves and updates the milestone catalog
type MilestoneHandler struct {
	service *services.MilestoneService
}

// NewMilestoneHandler creates a new MilestoneHandler
func NewMilestoneHandler(service *services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{service: service}
}

// MilestonesRequest represents a milestone catalog replacement
type MilestonesRequest struct {
	Milestones []models.Milestone `json:"milestones" validate:"required,min=1,dive"`
}

// Get returns the milestone catalog
func (h *MilestoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.service.GetAll(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to load milestones")
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"milestones": milestones,
	})
}

// Replace stores an updated milestone catalog. Newly completed milestones
// trigger Discord notifications as a side effect.
func (h *MilestoneHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req MilestonesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	updated, err := h.service.ReplaceAll(r.Context(), req.Milestones)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to save milestones")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"milestones": updated,
	})
}
