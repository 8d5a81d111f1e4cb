// Package taskextract pulls actionable to-do items out of free-form
// speech-to-text transcriptions.
//
// Extraction is a deterministic, pattern-based heuristic: the text is cut into
// sentences, each sentence is scanned for date expressions and task cues, and
// every task-worthy sentence becomes one task per date it mentions, or a
// single task due tomorrow when it mentions none.
package taskextract

import (
	"time"

	"github.com/google/uuid"

	"voice-task-extractor/pkg/datemath"
)

// Extractor turns transcriptions into tasks. It holds only read-only state
// and is safe for concurrent use.
type Extractor struct {
	dates    *datemath.Parser
	patterns []datePattern
	now      func() time.Time
	newID    func() string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLocation sets the timezone in which "today" and start-of-day are computed.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		e.dates = datemath.NewParserInLocation(loc)
	}
}

// WithWeekdayResolution chooses how bare weekday mentions are handled.
// Unknown modes are ignored.
func WithWeekdayResolution(mode WeekdayResolution) Option {
	return func(e *Extractor) {
		if mode.Valid() {
			e.patterns = buildPatterns(mode)
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator replaces the UUID generator used for task ids.
func WithIDGenerator(newID func() string) Option {
	return func(e *Extractor) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// New creates an Extractor. Defaults: UTC, weekday names resolved to their
// next occurrence, wall clock, random UUIDs.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		dates:    datemath.NewParserInLocation(time.UTC),
		patterns: buildPatterns(WeekdayNextOccurrence),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the timezone the extractor computes days in.
func (e *Extractor) Location() *time.Location {
	return e.dates.Location()
}

// Extract returns the tasks found in transcription. The clock is read once so
// every relative date in one call agrees on what "today" is.
func (e *Extractor) Extract(transcription string) []Task {
	return e.ExtractAt(transcription, e.now())
}

// ExtractAt is Extract with an explicit reference time.
func (e *Extractor) ExtractAt(transcription string, now time.Time) []Task {
	tasks := make([]Task, 0)
	for _, sentence := range splitSentences(transcription) {
		dates := e.resolveDates(sentence, now)
		tasks = append(tasks, e.tasksFromSentence(sentence, dates, now)...)
	}
	return tasks
}

func (e *Extractor) tasksFromSentence(sentence string, dates []time.Time, now time.Time) []Task {
	if !isTaskWorthy(sentence) {
		return nil
	}

	priority := determinePriority(sentence)
	if len(dates) == 0 {
		dates = []time.Time{e.dates.AddDays(e.dates.StartOfDay(now), 1)}
	}

	tasks := make([]Task, 0, len(dates))
	for _, date := range dates {
		tasks = append(tasks, Task{
			ID:       e.newID(),
			Text:     sentence,
			Date:     date,
			Priority: priority,
			Source:   SourceAudio,
		})
	}
	return tasks
}

var defaultExtractor = New()

// Extract runs the default extractor (UTC, wall clock) over transcription.
func Extract(transcription string) []Task {
	return defaultExtractor.Extract(transcription)
}
