package usage

import (
	"context"
	"time"

	"voice-task-extractor/internal/model"
)

// Tracker keeps per-user daily counters of transcriptions and extracted tasks.
type Tracker interface {
	// Today returns the counters for the calendar day containing now.
	Today(ctx context.Context, sc model.Scope, now time.Time) (Usage, error)

	// Record adds to the counters for the calendar day containing now.
	Record(ctx context.Context, sc model.Scope, now time.Time, delta Delta) (Usage, error)

	// Limits returns the daily limits that apply to the scope.
	Limits(sc model.Scope) Limits
}
