package http

import (
	"errors"
	"strings"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/pkg/response"
	"voice-task-extractor/pkg/taskextract"
)

const (
	maxExistingTasks = 1000

	// maxExistingTasksBytes is the share of the body left for existing_tasks.
	maxExistingTasksBytes = 256 << 10
	// maxBodyBytes bounds what is read from the request before decoding.
	maxBodyBytes = extraction.MaxTranscriptionLength + maxExistingTasksBytes
)

var (
	errBlankTranscription = errors.New("transcription must not be blank")
	errTooManyExisting    = errors.New("existing_tasks holds too many entries")
	errBodyTooLarge       = errors.New("request body too large")
)

// --- Request DTOs ---

type extractReq struct {
	Transcription string   `json:"transcription" binding:"required"`
	ExistingTasks []string `json:"existing_tasks"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Transcription) == "" {
		return errBlankTranscription
	}
	if len(r.ExistingTasks) > maxExistingTasks {
		return errTooManyExisting
	}
	return nil
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		Transcription: r.Transcription,
		ExistingTasks: r.ExistingTasks,
		Channel:       extraction.ChannelHTTP,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Date      response.Date `json:"date" swaggertype:"string" example:"2025-03-11"`
	Priority  string        `json:"priority" enums:"low,medium,high"`
	Source    string        `json:"source"`
	Completed bool          `json:"completed"`
}

type extractResp struct {
	Tasks            []taskResp `json:"tasks"`
	Extracted        int        `json:"extracted"`
	Duplicates       int        `json:"duplicates"`
	Truncated        bool       `json:"truncated"`
	TaskLimitReached bool       `json:"task_limit_reached"`
	Usage            usageResp  `json:"usage"`
}

type usageResp struct {
	Date                    string `json:"date"`
	Tasks                   int    `json:"tasks"`
	Transcriptions          int    `json:"transcriptions"`
	TasksPerDay             int    `json:"tasks_per_day"`
	TranscriptionsPerDay    int    `json:"transcriptions_per_day"`
	RetentionDays           int    `json:"retention_days"`
	Unlimited               bool   `json:"unlimited"`
	RemainingTasks          int    `json:"remaining_tasks"`          // -1 when unlimited
	RemainingTranscriptions int    `json:"remaining_transcriptions"` // -1 when unlimited
}

func newTaskResp(t taskextract.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Text:      t.Text,
		Date:      response.Date(t.Date),
		Priority:  string(t.Priority),
		Source:    string(t.Source),
		Completed: t.Completed,
	}
}

func newExtractResp(o extraction.ExtractOutput) extractResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return extractResp{
		Tasks:            tasks,
		Extracted:        o.Extracted,
		Duplicates:       o.Duplicates,
		Truncated:        o.Truncated,
		TaskLimitReached: o.TaskLimitReached,
		Usage:            newUsageResp(o.Usage),
	}
}

func newUsageResp(o extraction.UsageOutput) usageResp {
	return usageResp{
		Date:                    o.Usage.Date,
		Tasks:                   o.Usage.Tasks,
		Transcriptions:          o.Usage.Transcriptions,
		TasksPerDay:             o.Limits.TasksPerDay,
		TranscriptionsPerDay:    o.Limits.TranscriptionsPerDay,
		RetentionDays:           o.Limits.RetentionDays,
		Unlimited:               o.Limits.Unlimited,
		RemainingTasks:          o.RemainingTasks,
		RemainingTranscriptions: o.RemainingTranscriptions,
	}
}
