package taskextract

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// datePattern is one family of date expressions. The group indexes point at
// the day, month and year submatches used when a span has to be assembled
// from its parts; zero means the family carries no such groups.
type datePattern struct {
	name             string
	re               *regexp.Regexp
	day, month, year int
}

var absolutePatterns = []datePattern{
	{
		name: "long_month",
		re:   regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{4})\b`),
		day:  1, month: 2, year: 3,
	},
	{
		name: "short_month",
		re:   regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{4})\b`),
		day:  1, month: 2, year: 3,
	},
	{
		name: "slash",
		re:   regexp.MustCompile(`\b(?:on\s+)?(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		day:  1, month: 2, year: 3,
	},
	{
		name: "iso",
		re:   regexp.MustCompile(`\b(?:on\s+)?(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		day:  3, month: 2, year: 1,
	},
}

var relativePatterns = []datePattern{
	{name: "keyword", re: regexp.MustCompile(`(?i)\b(today|tomorrow|next\s+week|next\s+month)\b`)},
	{name: "offset", re: regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)},
}

var weekdayPattern = datePattern{
	name: "weekday",
	re:   regexp.MustCompile(`(?i)\b(?:on\s+)?(?:(?:this|next)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
}

// absoluteLayouts are tried in order once a span is stripped of "on" and ordinal suffixes.
var absoluteLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2 January 2006",
	"2 Jan 2006",
}

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	onPrefixRe = regexp.MustCompile(`(?i)^on\s+`)
	ordinalRe  = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\b`)
	blankRe    = regexp.MustCompile(`\s+`)
)

// buildPatterns returns the ordered pattern table for a weekday mode.
func buildPatterns(mode WeekdayResolution) []datePattern {
	patterns := make([]datePattern, 0, len(absolutePatterns)+len(relativePatterns)+1)
	patterns = append(patterns, absolutePatterns...)
	patterns = append(patterns, relativePatterns...)
	if mode == WeekdayNextOccurrence {
		patterns = append(patterns, weekdayPattern)
	}
	return patterns
}

type resolvedSpan struct {
	start int
	date  time.Time
}

// resolveDates returns the dates mentioned in sentence that fall on or after
// today, ordered by where they appear. A span already claimed by an earlier
// family is not matched again, so "1 May 2026" yields one date, not two.
func (e *Extractor) resolveDates(sentence string, now time.Time) []time.Time {
	today := e.dates.StartOfDay(now)

	var claimed [][2]int
	var spans []resolvedSpan
	for _, pattern := range e.patterns {
		for _, idx := range pattern.re.FindAllStringSubmatchIndex(sentence, -1) {
			start, end := idx[0], idx[1]
			if overlapsAny(claimed, start, end) {
				continue
			}
			claimed = append(claimed, [2]int{start, end})

			date, ok := e.resolveSpan(pattern, sentence[start:end], submatches(sentence, idx), now)
			if !ok || date.Before(today) {
				continue
			}
			spans = append(spans, resolvedSpan{start: start, date: date})
		}
	}

	slices.SortStableFunc(spans, func(a, b resolvedSpan) int {
		return cmp.Compare(a.start, b.start)
	})

	dates := make([]time.Time, len(spans))
	for i, s := range spans {
		dates[i] = s.date
	}
	return dates
}

// resolveSpan tries the relative reading first, then the absolute layouts,
// then assembles the date from the captured day, month and year.
func (e *Extractor) resolveSpan(pattern datePattern, text string, groups []string, now time.Time) (time.Time, bool) {
	cleaned := cleanSpan(text)

	if date, err := e.dates.Parse(cleaned, now); err == nil {
		return date, true
	}

	for _, layout := range absoluteLayouts {
		if parsed, err := time.ParseInLocation(layout, cleaned, e.dates.Location()); err == nil {
			return e.dates.StartOfDay(parsed), true
		}
	}

	if pattern.day == 0 || pattern.month == 0 || pattern.year == 0 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(groups[pattern.day])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthNumber(groups[pattern.month])
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(groups[pattern.year])
	if err != nil {
		return time.Time{}, false
	}
	date, err := e.dates.Date(year, month, day)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func cleanSpan(text string) string {
	text = strings.TrimSpace(text)
	text = onPrefixRe.ReplaceAllString(text, "")
	text = ordinalRe.ReplaceAllString(text, "$1")
	return blankRe.ReplaceAllString(text, " ")
}

func monthNumber(s string) (int, bool) {
	if n, ok := monthNumbers[strings.ToLower(s)]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func submatches(s string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		if idx[2*i] >= 0 {
			groups[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return groups
}

func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && c[0] < end {
			return true
		}
	}
	return false
}
