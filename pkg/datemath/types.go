package datemath

import "errors"

// DayKeyLayout is the layout DayKey formats with.
const DayKeyLayout = "2006-01-02"

const (
	daysPerWeek  = 7
	daysPerMonth = 30

	// Upper bounds for "in N units" so absurd offsets never reach time arithmetic.
	maxOffsetAmount = 100000
	maxOffsetDays   = 3650000

	minYear = 1
	maxYear = 9999
)

var (
	ErrUnrecognized   = errors.New("unrecognized relative date")
	ErrOffsetTooLarge = errors.New("relative offset too large")
	ErrInvalidDate    = errors.New("invalid calendar date")
)
