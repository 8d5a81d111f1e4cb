package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/internal/model"
	"voice-task-extractor/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func do(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{}, nil)

	var seen string
	r := newEngine(mw.RequestID(), func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := do(r, nil)
	if seen == "" || w.Header().Get(middleware.HeaderRequestID) != seen {
		t.Errorf("generated id not propagated: ctx=%q header=%q", seen, w.Header().Get(middleware.HeaderRequestID))
	}

	do(r, map[string]string{middleware.HeaderRequestID: "req-42"})
	if seen != "req-42" {
		t.Errorf("caller id not kept, got %q", seen)
	}

	do(r, map[string]string{middleware.HeaderRequestID: strings.Repeat("x", 100)})
	if len(seen) > 64 {
		t.Errorf("oversized caller id should be replaced, got %q", seen)
	}
}

func TestScope(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{}, nil)

	var got model.Scope
	r := newEngine(mw.Scope(), func(c *gin.Context) {
		got = middleware.GetScope(c)
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser string
	}{
		{name: "Header", header: "alice", wantCode: http.StatusNoContent, wantUser: "alice"},
		{name: "Trimmed", header: "  bob ", wantCode: http.StatusNoContent, wantUser: "bob"},
		{name: "Missing", header: "", wantCode: http.StatusNoContent, wantUser: model.AnonymousUserID},
		{name: "Too long", header: strings.Repeat("u", 129), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = model.Scope{}
			w := do(r, map[string]string{middleware.HeaderUserID: tt.header})
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantUser != "" && got.UserID != tt.wantUser {
				t.Errorf("UserID = %q, want %q", got.UserID, tt.wantUser)
			}
		})
	}
}

func TestGetScopeDefault(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if sc := middleware.GetScope(c); sc.UserID != model.AnonymousUserID {
		t.Errorf("GetScope() = %+v, want anonymous", sc)
	}
}

func TestRateLimit(t *testing.T) {
	m := metrics.New()
	// 60/min gives a burst of 6 and a refill far slower than the test.
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 60}, m)
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 6; i++ {
		if w := do(r, nil); w.Code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d, want 204", i, w.Code)
		}
	}
	if w := do(r, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}

	got, err := testutil.GatherAndCount(m.Registry(), "voice_task_extractor_rejections_total")
	if err != nil || got != 1 {
		t.Errorf("rejection series = %d (err %v), want 1", got, err)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{}, nil)
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 50; i++ {
		if w := do(r, nil); w.Code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d, want 204", i, w.Code)
		}
	}
}

func TestRateLimitLowRate(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 1}, nil)
	r := newEngine(mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	if w := do(r, nil); w.Code != http.StatusNoContent {
		t.Errorf("first request must pass, got %d", w.Code)
	}
	if w := do(r, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request must be limited, got %d", w.Code)
	}
}
