package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/extraction"
	extractionHTTP "voice-task-extractor/internal/extraction/delivery/http"
	"voice-task-extractor/internal/extraction/usecase"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/internal/model"
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/log"
	"voice-task-extractor/pkg/taskextract"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type taskBody struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
	Source   string `json:"source"`
}

type extractBody struct {
	Tasks            []taskBody `json:"tasks"`
	Extracted        int        `json:"extracted"`
	Duplicates       int        `json:"duplicates"`
	Truncated        bool       `json:"truncated"`
	TaskLimitReached bool       `json:"task_limit_reached"`
	Usage            usageBody  `json:"usage"`
}

type usageBody struct {
	Date                    string `json:"date"`
	Tasks                   int    `json:"tasks"`
	Transcriptions          int    `json:"transcriptions"`
	Unlimited               bool   `json:"unlimited"`
	RemainingTasks          int    `json:"remaining_tasks"`
	RemainingTranscriptions int    `json:"remaining_transcriptions"`
}

type failingUseCase struct{}

func (failingUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	return extraction.ExtractOutput{}, errors.New("store down")
}

func (failingUseCase) Usage(ctx context.Context, sc model.Scope) (extraction.UsageOutput, error) {
	return extraction.UsageOutput{}, errors.New("store down")
}

// Monday 2025-03-10 09:30 UTC.
var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newRouter(uc extraction.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	mw := middleware.New(l, middleware.Config{}, nil)

	r := gin.New()
	extractionHTTP.RegisterRoutes(r.Group("/api/v1"), extractionHTTP.New(l, uc), mw)
	return r
}

func newUseCase(transcriptionsPerDay int) extraction.UseCase {
	tracker := usage.NewMemoryTracker(usage.Config{
		TasksPerDay:          7,
		TranscriptionsPerDay: transcriptionsPerDay,
		RetentionDays:        30,
		PremiumUsers:         []string{"vip"},
	}, datemath.NewParserInLocation(time.UTC))

	uc := usecase.New(log.NewNop(), taskextract.New(), tracker, nil)
	uc.SetClock(func() time.Time { return fixedNow })
	return uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, userID string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestExtract(t *testing.T) {
	r := newRouter(newUseCase(3))

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "alice", map[string]any{
		"transcription":  "I need to call the dentist tomorrow. Submit the report on 14/03/2025, it's urgent. I need to buy milk.",
		"existing_tasks": []string{"I NEED TO BUY MILK"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body extractBody
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(body.Tasks) != 2 || body.Duplicates != 1 || body.Extracted != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}

	first, second := body.Tasks[0], body.Tasks[1]
	if first.Date != "2025-03-11" || first.Priority != "medium" || first.Source != "audio" || first.ID == "" {
		t.Errorf("first task = %+v", first)
	}
	if second.Text != "Submit the report on 14/03/2025, it's urgent" || second.Date != "2025-03-14" || second.Priority != "high" {
		t.Errorf("second task = %+v", second)
	}
	if body.Usage.Tasks != 2 || body.Usage.RemainingTranscriptions != 2 {
		t.Errorf("usage = %+v", body.Usage)
	}
}

func TestExtractBadRequests(t *testing.T) {
	r := newRouter(newUseCase(3))

	tests := []struct {
		name string
		body any
	}{
		{name: "Malformed JSON", body: "{nope"},
		{name: "Missing transcription", body: map[string]any{}},
		{name: "Blank transcription", body: map[string]any{"transcription": "  \n "}},
		{name: "Too many existing tasks", body: map[string]any{"transcription": "Call mom", "existing_tasks": make([]string, 1001)}},
		{name: "Transcription too long", body: map[string]any{"transcription": strings.Repeat("a", extraction.MaxTranscriptionLength+1)}},
		{name: "Oversized body", body: map[string]any{
			"transcription":  "Call mom",
			"existing_tasks": []string{strings.Repeat("x", 2<<20), strings.Repeat("y", 2<<20)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if env.ErrorCode == 0 {
				t.Errorf("expected non-zero error code")
			}
		})
	}
}

func TestExtractTranscriptionLimit(t *testing.T) {
	r := newRouter(newUseCase(1))
	body := map[string]any{"transcription": "Call mom"}

	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "bob", body); w.Code != http.StatusOK {
		t.Fatalf("first call status = %d", w.Code)
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "bob", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	var u usageBody
	if err := json.Unmarshal(env.Data, &u); err != nil {
		t.Fatalf("decode usage: %v", err)
	}
	if u.RemainingTranscriptions != 0 || u.Transcriptions != 1 {
		t.Errorf("usage on 429 = %+v", u)
	}

	// Limits are per user.
	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "carol", body); w.Code != http.StatusOK {
		t.Errorf("other user status = %d, want 200", w.Code)
	}
}

func TestUsage(t *testing.T) {
	r := newRouter(newUseCase(3))
	doJSON(t, r, http.MethodPost, "/api/v1/extractions", "", map[string]any{"transcription": "Call mom. Call dad."})

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/usage", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var u usageBody
	if err := json.Unmarshal(env.Data, &u); err != nil {
		t.Fatalf("decode usage: %v", err)
	}
	if u.Date != "2025-03-10" || u.Tasks != 2 || u.RemainingTasks != 5 || u.RemainingTranscriptions != 2 {
		t.Errorf("anonymous usage = %+v", u)
	}

	_, env = doJSON(t, r, http.MethodGet, "/api/v1/usage", "vip", nil)
	json.Unmarshal(env.Data, &u)
	if !u.Unlimited || u.RemainingTasks != usage.Unlimited {
		t.Errorf("premium usage = %+v", u)
	}
}

func TestInternalErrors(t *testing.T) {
	r := newRouter(failingUseCase{})

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/extractions", "", map[string]any{"transcription": "Call mom"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("extract status = %d, want 500", w.Code)
	}
	if env.Message == "store down" {
		t.Errorf("internal error leaked to client")
	}

	if w, _ := doJSON(t, r, http.MethodGet, "/api/v1/usage", "", nil); w.Code != http.StatusInternalServerError {
		t.Errorf("usage status = %d, want 500", w.Code)
	}
}
