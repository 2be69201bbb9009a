package datemath

import (
	"errors"
	"time"
)

// Period names understood by Parser.Range.
const (
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodLastWeek  = "last_week"
)

var ErrUnknownPeriod = errors.New("unknown period")

// Range is a half-open time interval: From is inclusive, To is exclusive.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}
