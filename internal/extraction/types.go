package extraction

import (
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/taskextract"
)

// Channels label where a transcription came from, for logs and metrics.
const (
	ChannelHTTP     = "http"
	ChannelTelegram = "telegram"
	ChannelCLI      = "cli"
)

// MaxTranscriptionLength bounds the accepted transcription size in bytes.
const MaxTranscriptionLength = 64 * 1024

// ExtractInput is the input for Extract.
type ExtractInput struct {
	Transcription string
	ExistingTasks []string // texts of tasks the caller already holds
	Channel       string
}

// ExtractOutput is the result of Extract.
type ExtractOutput struct {
	Tasks            []taskextract.Task
	Extracted        int  // tasks produced before deduplication and truncation
	Duplicates       int  // tasks dropped as duplicates
	Truncated        bool // some tasks were cut by the daily task limit
	TaskLimitReached bool // no task slots were left at all
	Usage            UsageOutput
}

// UsageOutput is the result of Usage.
type UsageOutput struct {
	Usage                   usage.Usage
	Limits                  usage.Limits
	RemainingTasks          int // usage.Unlimited when no limit applies
	RemainingTranscriptions int
}
