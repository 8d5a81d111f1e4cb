package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	weekdayRe    = regexp.MustCompile(`^(?:(this|next) )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute start-of-day time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to an already loaded location.
// A nil location means UTC.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the timezone the parser computes days in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute start-of-day time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	relative = spaceRe.ReplaceAllString(relative, " ")
	today := p.StartOfDay(baseTime)

	switch relative {
	case "today":
		return today, nil
	case "tomorrow":
		return p.AddDays(today, 1), nil
	case "yesterday":
		return p.AddDays(today, -1), nil
	case "next week":
		return p.AddDays(today, daysPerWeek), nil
	case "next month":
		return p.AddDays(today, daysPerMonth), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, today)
	}

	if weekdayRe.MatchString(relative) {
		return p.parseWeekday(relative, today)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
// A month is a flat 30 days.
func (p *Parser) parseInDuration(relative string, today time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrOffsetTooLarge, matches[1])
	}
	unit := matches[2]

	var days int
	switch {
	case strings.HasPrefix(unit, "day"):
		days = amount
	case strings.HasPrefix(unit, "week"):
		days = amount * daysPerWeek
	case strings.HasPrefix(unit, "month"):
		days = amount * daysPerMonth
	}
	if amount > maxOffsetAmount || days > maxOffsetDays {
		return time.Time{}, fmt.Errorf("%w: %q", ErrOffsetTooLarge, relative)
	}

	date := p.AddDays(today, days)
	if date.Year() > maxYear {
		return time.Time{}, fmt.Errorf("%w: %q lands after year %d", ErrOffsetTooLarge, relative, maxYear)
	}
	return date, nil
}

// parseWeekday handles "monday", "this friday" and "next friday".
// "next" always lands strictly after today; the other forms may land on today.
func (p *Parser) parseWeekday(relative string, today time.Time) (time.Time, error) {
	matches := weekdayRe.FindStringSubmatch(relative)
	target, ok := weekdays[matches[2]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, matches[2])
	}
	return p.NextWeekday(today, target, matches[1] == "next"), nil
}

// NextWeekday returns the next occurrence of day on or after baseTime.
// With strict set, an occurrence on baseTime's own day is skipped.
func (p *Parser) NextWeekday(baseTime time.Time, day time.Weekday, strict bool) time.Time {
	today := p.StartOfDay(baseTime)
	daysUntil := int(day - today.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}
	return p.AddDays(today, daysUntil)
}

// Date builds a start-of-day time from calendar components, rejecting values
// that time.Date would silently normalise (February 30th, month 13).
func (p *Parser) Date(year, month, day int) (time.Time, error) {
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// AddDays moves a date by whole calendar days and keeps it at midnight across DST changes.
func (p *Parser) AddDays(t time.Time, days int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, p.location)
}

// DayKey formats the calendar day of t in the parser's timezone.
func (p *Parser) DayKey(t time.Time) string {
	return t.In(p.location).Format(DayKeyLayout)
}
