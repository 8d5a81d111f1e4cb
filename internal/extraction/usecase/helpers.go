package usecase

import (
	"strings"

	"golang.org/x/text/cases"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/taskextract"
)

// dedupe drops tasks whose text matches one of existing, or an earlier task
// with the same text and date. Text comparison is case-folded.
func dedupe(tasks []taskextract.Task, existing []string) ([]taskextract.Task, int) {
	// Casers keep state, so each call gets its own.
	fold := cases.Fold()
	key := func(text string) string {
		return fold.String(strings.TrimSpace(text))
	}

	known := make(map[string]struct{}, len(existing))
	for _, text := range existing {
		known[key(text)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(tasks))
	kept := make([]taskextract.Task, 0, len(tasks))
	for _, t := range tasks {
		text := key(t.Text)
		if _, ok := known[text]; ok {
			continue
		}
		dated := text + "|" + t.Date.Format(datemath.DayKeyLayout)
		if _, ok := seen[dated]; ok {
			continue
		}
		seen[dated] = struct{}{}
		kept = append(kept, t)
	}
	return kept, len(tasks) - len(kept)
}

func countByPriority(tasks []taskextract.Task) map[taskextract.Priority]int {
	counts := make(map[taskextract.Priority]int)
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

func toUsageOutput(u usage.Usage, limits usage.Limits) extraction.UsageOutput {
	return extraction.UsageOutput{
		Usage:                   u,
		Limits:                  limits,
		RemainingTasks:          limits.RemainingTasks(u),
		RemainingTranscriptions: limits.RemainingTranscriptions(u),
	}
}
