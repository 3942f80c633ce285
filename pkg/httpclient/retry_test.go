package httpclient_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ItsCoreyE/creatorsite/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDo_RetriesTransientStatusThenSucceeds(t *testing.T) {
	var mu sync.Mutex
	var calls int32
	var timestamps []time.Time
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		timestamps = append(timestamps, time.Now())
		mu.Unlock()
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := httpclient.New(testLogger())
	opts := httpclient.Options{Retries: 2, RetryDelay: 20 * time.Millisecond}

	resp, err := client.Do(http.MethodPost, server.URL, nil, []byte(`{}`), opts)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// Linear backoff: gap before attempt 3 is at least twice the base delay
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, timestamps, 3)
	firstGap := timestamps[1].Sub(timestamps[0])
	secondGap := timestamps[2].Sub(timestamps[1])
	assert.GreaterOrEqual(t, firstGap, 20*time.Millisecond)
	assert.GreaterOrEqual(t, secondGap, 40*time.Millisecond)
}

func TestDo_PermanentClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := httpclient.New(testLogger())
	opts := httpclient.Options{Retries: 2, RetryDelay: 10 * time.Millisecond}

	resp, err := client.Do(http.MethodGet, server.URL, nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_LastAttemptReturnsErrorStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := httpclient.New(testLogger())
	opts := httpclient.Options{Retries: 1, RetryDelay: 10 * time.Millisecond}

	// All attempts exhaust on a retryable status: the final response is
	// still handed back so the caller can inspect it
	resp, err := client.Do(http.MethodPost, server.URL, nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDo_NetworkErrorExhaustsRetries(t *testing.T) {
	client := httpclient.New(testLogger())
	opts := httpclient.Options{Retries: 1, RetryDelay: 10 * time.Millisecond, Timeout: 500 * time.Millisecond}

	// Closed port: every attempt fails at the network level
	_, err := client.Do(http.MethodPost, "http://127.0.0.1:1", nil, nil, opts)
	assert.Error(t, err)
}

func TestDo_TimeoutAbortsAttempt(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(testLogger())
	opts := httpclient.Options{Timeout: 50 * time.Millisecond, Retries: 1, RetryDelay: 10 * time.Millisecond}

	start := time.Now()
	_, err := client.Do(http.MethodGet, server.URL, nil, nil, opts)
	assert.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Less(t, time.Since(start), 1*time.Second)
}

func TestDo_SendsHeadersAndBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := httpclient.New(testLogger())
	header := http.Header{}
	header.Set("Content-Type", "application/json")

	resp, err := client.Do(http.MethodPost, server.URL, header, []byte(`{"content":"hi"}`), httpclient.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"content":"hi"}`, string(gotBody))
}

func TestShouldRetry(t *testing.T) {
	opts := httpclient.Options{Retries: 2}

	tests := []struct {
		name    string
		status  int
		attempt int
		want    bool
	}{
		{"503 first attempt", 503, 0, true},
		{"503 middle attempt", 503, 1, true},
		{"503 last attempt", 503, 2, false},
		{"429 first attempt", 429, 0, true},
		{"408 first attempt", 408, 0, true},
		{"404 never", 404, 0, false},
		{"400 never", 400, 0, false},
		{"200 never", 200, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpclient.ShouldRetry(tt.status, tt.attempt, opts))
		})
	}
}
