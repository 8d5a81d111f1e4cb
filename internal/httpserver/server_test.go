package httpserver_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	extractionHTTP "voice-task-extractor/internal/extraction/delivery/http"
	"voice-task-extractor/internal/extraction/usecase"
	"voice-task-extractor/internal/httpserver"
	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/log"
	"voice-task-extractor/pkg/taskextract"
)

func newConfig(port int) httpserver.Config {
	l := log.NewNop()
	m := metrics.New()
	tracker := usage.NewMemoryTracker(usage.Config{TasksPerDay: 7, TranscriptionsPerDay: 3, RetentionDays: 30},
		datemath.NewParserInLocation(time.UTC))
	uc := usecase.New(l, taskextract.New(), tracker, m)

	return httpserver.Config{
		Port:              port,
		Mode:              "test",
		Environment:       "development",
		ShutdownTimeout:   time.Second,
		Metrics:           m,
		Middleware:        middleware.New(l, middleware.Config{RequestsPerMin: 600}, m),
		ExtractionHandler: extractionHTTP.New(l, uc),
	}
}

func TestNewValidation(t *testing.T) {
	cfg := newConfig(8080)

	_, err := httpserver.New(nil, cfg)
	assert.Error(t, err, "logger is required")

	noPort := cfg
	noPort.Port = 0
	_, err = httpserver.New(log.NewNop(), noPort)
	assert.Error(t, err)

	noHandler := cfg
	noHandler.ExtractionHandler = nil
	_, err = httpserver.New(log.NewNop(), noHandler)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), newConfig(8080))
	require.NoError(t, err)
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), httpserver.ServiceName, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extractions", strings.NewReader(`{"transcription":"Call mom tomorrow"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"Call mom tomorrow"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "voice_task_extractor_extractions_total")

	// No Telegram handler configured.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRunShutsDownOnCancel(t *testing.T) {
	port := freePort(t)
	srv, err := httpserver.New(log.NewNop(), newConfig(port))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
