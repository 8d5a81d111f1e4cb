package usecase

import (
	"context"
	"fmt"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/model"
)

// Usage reports today's counters for the scope.
func (uc *implUseCase) Usage(ctx context.Context, sc model.Scope) (extraction.UsageOutput, error) {
	today, err := uc.tracker.Today(ctx, sc, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Usage: failed to load usage for user=%s: %v", sc.UserID, err)
		return extraction.UsageOutput{}, fmt.Errorf("load usage: %w", err)
	}
	return toUsageOutput(today, uc.tracker.Limits(sc)), nil
}
