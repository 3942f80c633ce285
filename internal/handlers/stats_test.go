package handlers_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItsCoreyE/creatorsite/internal/handlers"
	"github.com/ItsCoreyE/creatorsite/internal/models"
	"github.com/ItsCoreyE/creatorsite/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStatsHandler(repo *handlers.MemStatsRepo, notifier *handlers.MockNotifier) *handlers.StatsHandler {
	svc := services.NewStatsService(repo, notifier, testLogger())
	return handlers.NewStatsHandler(svc)
}

func TestStatsGet_Defaults(t *testing.T) {
	handler := newStatsHandler(&handlers.MemStatsRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "GET", "/api/data", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	var stats models.SalesStats
	handlers.AssertJSONResponse(t, w, 200, &stats)
	assert.Equal(t, float64(56799), stats.TotalRevenue)
	assert.Equal(t, "All Time", stats.DataPeriod)
}

func TestStatsSave_Persists(t *testing.T) {
	repo := &handlers.MemStatsRepo{}
	handler := newStatsHandler(repo, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/data", handlers.StatsRequest{
		TotalRevenue: 1200,
		TotalSales:   300,
		DataPeriod:   "July 2025",
		UploadType:   "single",
	})
	w := httptest.NewRecorder()
	handler.Save(w, req)

	var saved models.SalesStats
	handlers.AssertJSONResponse(t, w, 200, &saved)
	assert.NotEmpty(t, saved.LastUpdated)

	require.NotNil(t, repo.Stats)
	assert.Equal(t, "July 2025", repo.Stats.DataPeriod)
}

func TestStatsSave_MissingPeriod(t *testing.T) {
	handler := newStatsHandler(&handlers.MemStatsRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/data", handlers.StatsRequest{TotalRevenue: 100})
	w := httptest.NewRecorder()
	handler.Save(w, req)

	handlers.AssertErrorResponse(t, w, 400, "bad_request")
}

func TestStatsSave_InvalidUploadType(t *testing.T) {
	handler := newStatsHandler(&handlers.MemStatsRepo{}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/data", handlers.StatsRequest{
		DataPeriod: "July 2025",
		UploadType: "weekly",
	})
	w := httptest.NewRecorder()
	handler.Save(w, req)

	handlers.AssertErrorResponse(t, w, 400, "bad_request")
}

func TestStatsSave_RepoError(t *testing.T) {
	handler := newStatsHandler(&handlers.MemStatsRepo{Err: assert.AnError}, &handlers.MockNotifier{})

	req := handlers.NewTestRequest(t, "POST", "/api/data", handlers.StatsRequest{DataPeriod: "July 2025"})
	w := httptest.NewRecorder()
	handler.Save(w, req)

	handlers.AssertErrorResponse(t, w, 500, "internal_error")
}
