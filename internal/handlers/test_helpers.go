package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ItsCoreyE/creatorsite/internal/models"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error response
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.Equal(t, expectedError, resp.Error, "Error code mismatch")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
}

// MockAuthService implements AdminAuthService for testing
type MockAuthService struct {
	LoginFunc func(ip, password string) (string, int, error)
	MaxAge    int
}

func (m *MockAuthService) Login(ip, password string) (string, int, error) {
	return m.LoginFunc(ip, password)
}

func (m *MockAuthService) SessionMaxAge() int {
	if m.MaxAge > 0 {
		return m.MaxAge
	}
	return 28800
}

// MemStatsRepo is an in-memory StatsRepository for handler tests
type MemStatsRepo struct {
	Stats *models.SalesStats
	Err   error
}

func (m *MemStatsRepo) Get(ctx context.Context) (models.SalesStats, error) {
	if m.Err != nil {
		return models.SalesStats{}, m.Err
	}
	if m.Stats == nil {
		return models.DefaultSalesStats(), nil
	}
	return *m.Stats, nil
}

func (m *MemStatsRepo) Save(ctx context.Context, stats models.SalesStats) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stats = &stats
	return nil
}

// MemMilestoneRepo is an in-memory MilestoneRepository for handler tests
type MemMilestoneRepo struct {
	Milestones []models.Milestone
	Err        error
}

func (m *MemMilestoneRepo) GetAll(ctx context.Context) ([]models.Milestone, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Milestones == nil {
		return models.DefaultMilestones(), nil
	}
	return m.Milestones, nil
}

func (m *MemMilestoneRepo) SaveAll(ctx context.Context, milestones []models.Milestone) error {
	if m.Err != nil {
		return m.Err
	}
	m.Milestones = milestones
	return nil
}

// MockNotifier records announcements made during handler tests
type MockNotifier struct {
	Milestones []models.Milestone
	Stats      []models.SalesStats
	Err        error
}

func (m *MockNotifier) SendMilestone(milestone models.Milestone, _ models.MilestoneProgress) error {
	if m.Err != nil {
		return m.Err
	}
	m.Milestones = append(m.Milestones, milestone)
	return nil
}

func (m *MockNotifier) SendStats(stats models.SalesStats) error {
	if m.Err != nil {
		return m.Err
	}
	m.Stats = append(m.Stats, stats)
	return nil
}
