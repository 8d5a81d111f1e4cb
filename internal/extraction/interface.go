package extraction

import (
	"context"

	"voice-task-extractor/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract turns a transcription into new tasks for the scope, applying
	// deduplication against the caller's list and the daily limits.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Usage reports today's consumption and remaining allowance.
	Usage(ctx context.Context, sc model.Scope) (UsageOutput, error)
}
