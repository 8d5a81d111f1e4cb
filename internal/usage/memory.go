package usage

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-extractor/internal/model"
	"voice-task-extractor/pkg/datemath"
)

const defaultMaxUsers = 10000

type counter struct {
	tasks          int
	transcriptions int
}

type memoryTracker struct {
	mu       sync.Mutex
	counters *expirable.LRU[string, counter]
	dates    *datemath.Parser
	limits   Limits
	premium  map[string]bool
}

var _ Tracker = (*memoryTracker)(nil)

// NewMemoryTracker keeps counters in an expiring LRU. Entries live for the
// retention window, so old days disappear without a cleanup job.
func NewMemoryTracker(cfg Config, dates *datemath.Parser) *memoryTracker {
	maxUsers := cfg.MaxUsers
	if maxUsers <= 0 {
		maxUsers = defaultMaxUsers
	}
	retention := cfg.RetentionDays
	if retention <= 0 {
		retention = 30
	}

	premium := make(map[string]bool, len(cfg.PremiumUsers))
	for _, id := range cfg.PremiumUsers {
		premium[id] = true
	}

	return &memoryTracker{
		counters: expirable.NewLRU[string, counter](maxUsers, nil, time.Duration(retention)*24*time.Hour),
		dates:    dates,
		limits: Limits{
			TasksPerDay:          cfg.TasksPerDay,
			TranscriptionsPerDay: cfg.TranscriptionsPerDay,
			RetentionDays:        retention,
		},
		premium: premium,
	}
}

func (t *memoryTracker) Today(ctx context.Context, sc model.Scope, now time.Time) (Usage, error) {
	if sc.UserID == "" {
		return Usage{}, ErrMissingUser
	}
	day := t.dates.DayKey(now)

	t.mu.Lock()
	defer t.mu.Unlock()
	c, _ := t.counters.Get(key(sc.UserID, day))
	return Usage{Date: day, Tasks: c.tasks, Transcriptions: c.transcriptions}, nil
}

func (t *memoryTracker) Record(ctx context.Context, sc model.Scope, now time.Time, delta Delta) (Usage, error) {
	if sc.UserID == "" {
		return Usage{}, ErrMissingUser
	}
	if delta.Tasks < 0 || delta.Transcriptions < 0 {
		return Usage{}, ErrNegativeDelta
	}
	day := t.dates.DayKey(now)
	k := key(sc.UserID, day)

	t.mu.Lock()
	defer t.mu.Unlock()
	c, _ := t.counters.Get(k)
	c.tasks += delta.Tasks
	c.transcriptions += delta.Transcriptions
	t.counters.Add(k, c)
	return Usage{Date: day, Tasks: c.tasks, Transcriptions: c.transcriptions}, nil
}

func (t *memoryTracker) Limits(sc model.Scope) Limits {
	l := t.limits
	l.Unlimited = sc.Premium || t.premium[sc.UserID]
	return l
}

func key(userID, day string) string {
	return userID + "|" + day
}
