package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/model"
	"voice-task-extractor/internal/usage"
)

// Extract turns a transcription into tasks and charges them to the scope's daily usage.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	channel := input.Channel
	if channel == "" {
		channel = extraction.ChannelHTTP
	}

	if strings.TrimSpace(input.Transcription) == "" {
		uc.reject(metrics.ReasonEmptyInput)
		return extraction.ExtractOutput{}, extraction.ErrEmptyTranscription
	}
	if len(input.Transcription) > extraction.MaxTranscriptionLength {
		uc.reject(metrics.ReasonTooLong)
		return extraction.ExtractOutput{}, extraction.ErrTranscriptionTooLong
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := uc.now()
	limits := uc.tracker.Limits(sc)

	today, err := uc.tracker.Today(ctx, sc, start)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: failed to load usage for user=%s: %v", sc.UserID, err)
		return extraction.ExtractOutput{}, fmt.Errorf("load usage: %w", err)
	}
	if limits.RemainingTranscriptions(today) == 0 {
		uc.l.Warnf(ctx, "extraction.usecase.Extract: transcription limit reached for user=%s", sc.UserID)
		uc.reject(metrics.ReasonTranscriptionLimit)
		return extraction.ExtractOutput{}, extraction.ErrTranscriptionLimitReached
	}

	extracted := uc.extractor.ExtractAt(input.Transcription, start)
	tasks, duplicates := dedupe(extracted, input.ExistingTasks)

	out := extraction.ExtractOutput{
		Extracted:  len(extracted),
		Duplicates: duplicates,
	}

	if remaining := limits.RemainingTasks(today); remaining != usage.Unlimited && len(tasks) > remaining {
		out.Truncated = true
		out.TaskLimitReached = remaining == 0
		tasks = tasks[:remaining]
		uc.reject(metrics.ReasonTaskLimit)
	}
	out.Tasks = tasks

	recorded, err := uc.tracker.Record(ctx, sc, start, usage.Delta{Tasks: len(tasks), Transcriptions: 1})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: failed to record usage for user=%s: %v", sc.UserID, err)
		return extraction.ExtractOutput{}, fmt.Errorf("record usage: %w", err)
	}
	out.Usage = toUsageOutput(recorded, limits)

	if uc.metrics != nil {
		uc.metrics.ObserveExtraction(channel, uc.now().Sub(start))
		uc.metrics.AddDuplicates(duplicates)
		for priority, n := range countByPriority(tasks) {
			uc.metrics.AddTasks(string(priority), n)
		}
	}

	uc.l.Infof(ctx, "extraction.usecase.Extract: user=%s channel=%s extracted=%d duplicates=%d kept=%d truncated=%t",
		sc.UserID, channel, out.Extracted, out.Duplicates, len(out.Tasks), out.Truncated)

	return out, nil
}

func (uc *implUseCase) reject(reason string) {
	if uc.metrics != nil {
		uc.metrics.Reject(reason)
	}
}
