package taskextract

import "time"

// Priority is the urgency level assigned to an extracted task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Source tags where a task came from in the surrounding application.
type Source string

const (
	SourceAudio  Source = "audio"
	SourceManual Source = "manual"
)

// Task is a to-do item recognised in a transcription.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"` // start of day in the extractor's location
	Priority  Priority  `json:"priority"`
	Source    Source    `json:"source"`
	Completed bool      `json:"completed"`
}

// WeekdayResolution controls what happens to "on Friday" style mentions.
type WeekdayResolution string

const (
	// WeekdayNextOccurrence resolves weekday names to their upcoming date.
	WeekdayNextOccurrence WeekdayResolution = "next_occurrence"
	// WeekdayUnresolved ignores weekday names, so such sentences fall back to tomorrow.
	WeekdayUnresolved WeekdayResolution = "unresolved"
)

// Valid reports whether r is a known resolution mode.
func (r WeekdayResolution) Valid() bool {
	return r == WeekdayNextOccurrence || r == WeekdayUnresolved
}
