package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItsCoreyE/creatorsite/internal/handlers"
	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/services"
)

func newMilestoneHandler(repo *handlers.MemMilestoneRepo, notifier *handlers.MockNotifier) *handlers.MilestoneHandler {
	svc := services.NewMilestoneService(repo, notifier, testLogger())
	return handlers.NewMilestoneHandler(svc)
}

type milestonesResponse struct {
	Milestones []models.Milestone `json:"milestones"`
}

func TestMilestonesGet_SeedsDefaults(t *testing.T) {
	handler := newMilestoneHandler(&handlers.MemMilestoneRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "GET", "/api/milestones", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	var resp milestonesResponse
	handlers.AssertJSONResponse(t, w, 200, &resp)
	assert.Len(t, resp.Milestones, len(models.DefaultMilestones()))
}

func TestMilestonesReplace_NotifiesNewCompletions(t *testing.T) {
	repo := &handlers.MemMilestoneRepo{Milestones: []models.Milestone{
		{ID: "rev-1k", Category: models.CategoryRevenue, Target: 1000, Description: "Earned 1,000 Robux"},
	}}
	notifier := &handlers.MockNotifier{}
	handler := newMilestoneHandler(repo, notifier)

	req := handlers.NewTestRequest(t, "POST", "/api/milestones", handlers.MilestonesRequest{
		Milestones: []models.Milestone{
			{ID: "rev-1k", Category: models.CategoryRevenue, Target: 1000, Description: "Earned 1,000 Robux", IsCompleted: true},
		},
	})
	w := httptest.NewRecorder()
	handler.Replace(w, req)

	var resp milestonesResponse
	handlers.AssertJSONResponse(t, w, 200, &resp)
	require.Len(t, resp.Milestones, 1)
	assert.NotEmpty(t, resp.Milestones[0].CompletedDate)

	require.Len(t, notifier.Milestones, 1)
	assert.Equal(t, "rev-1k", notifier.Milestones[0].ID)
}

func TestMilestonesReplace_EmptyList(t *testing.T) {
	handler := newMilestoneHandler(&handlers.MemMilestoneRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/milestones", handlers.MilestonesRequest{})
	w := httptest.NewRecorder()
	handler.Replace(w, req)

	handlers.AssertErrorResponse(t, w, 400, "bad_request")
}

func TestMilestonesReplace_InvalidCategory(t *testing.T) {
	handler := newMilestoneHandler(&handlers.MemMilestoneRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/milestones", handlers.MilestonesRequest{
		Milestones: []models.Milestone{
			{ID: "x-1", Category: "followers", Description: "invalid"},
		},
	})
	w := httptest.NewRecorder()
	handler.Replace(w, req)

	handlers.AssertErrorResponse(t, w, 400, "bad_request")
}

func TestMilestonesReplace_DeliveryFailureStillSaves(t *testing.T) {
	repo := &handlers.MemMilestoneRepo{Milestones: []models.Milestone{
		{ID: "rev-1k", Category: models.CategoryRevenue, Target: 1000, Description: "Earned 1,000 Robux"},
	}}
	notifier := &handlers.MockNotifier{Err: models.ErrDeliveryFailed}
	handler := newMilestoneHandler(repo, notifier)

	req := handlers.NewTestRequest(t, "POST", "/api/milestones", handlers.MilestonesRequest{
		Milestones: []models.Milestone{
			{ID: "rev-1k", Category: models.CategoryRevenue, Target: 1000, Description: "Earned 1,000 Robux", IsCompleted: true},
		},
	})
	w := httptest.NewRecorder()
	handler.Replace(w, req)

	assert.Equal(t, 200, w.Code)
	require.Len(t, repo.Milestones, 1)
	assert.True(t, repo.Milestones[0].IsCompleted)
}
