package usecase

import (
	"sync"
	"time"

	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/usage"
	pkgLog "voice-task-extractor/pkg/log"
	"voice-task-extractor/pkg/taskextract"
)

// Extractor is the part of taskextract.Extractor the use case needs.
type Extractor interface {
	ExtractAt(transcription string, now time.Time) []taskextract.Task
}

type implUseCase struct {
	l         pkgLog.Logger
	extractor Extractor
	tracker   usage.Tracker
	metrics   *metrics.Metrics
	now       func() time.Time

	// mu makes the quota check and the usage record one step.
	mu sync.Mutex
}

// New creates a new extraction UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	extractor Extractor,
	tracker usage.Tracker,
	m *metrics.Metrics,
) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
		tracker:   tracker,
		metrics:   m,
		now:       time.Now,
	}
}

// SetClock replaces the wall clock.
func (uc *implUseCase) SetClock(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}
