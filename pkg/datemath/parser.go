package datemath

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Parser resolves named reporting periods to absolute date ranges in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Range converts a period name to a half-open [From, To) range around baseTime.
func (p *Parser) Range(period string, baseTime time.Time) (Range, error) {
	today := p.startOfDay(baseTime)

	switch strings.ToLower(strings.TrimSpace(period)) {
	case PeriodThisMonth:
		from := p.startOfMonth(today)
		return Range{From: from, To: from.AddDate(0, 1, 0)}, nil
	case PeriodLastMonth:
		to := p.startOfMonth(today)
		return Range{From: to.AddDate(0, -1, 0), To: to}, nil
	case PeriodLastWeek:
		return Range{From: today.AddDate(0, 0, -7), To: today.AddDate(0, 0, 1)}, nil
	}

	return Range{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// startOfMonth returns midnight on the first day of t's month.
func (p *Parser) startOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}
