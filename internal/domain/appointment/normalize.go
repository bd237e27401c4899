package appointment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Harika-001-tech/prenatal-app/internal/timezone"
)

// InstantLayout is the only accepted wire form of a requested appointment start.
const InstantLayout = "2006-01-02T15:04:05.000Z"

var instantPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z`)

// Instant is a normalized request time and the calendar day it falls on.
type Instant struct {
	At  time.Time // UTC
	Day time.Time // midnight of the day in the service offset
}

// NormalizeInstant salvages a start time from input that some clients send
// with the timestamp fragment repeated. Exactly one distinct well-formed
// fragment must be present; anything else is rejected, not guessed at.
func NormalizeInstant(raw string, loc *time.Location) (Instant, error) {
	matches := instantPattern.FindAllString(raw, -1)
	if len(matches) == 0 {
		return Instant{}, fmt.Errorf("%w: no timestamp in %q", ErrInvalidDateFormat, raw)
	}

	candidate := matches[0]
	for _, m := range matches[1:] {
		if m != candidate {
			return Instant{}, fmt.Errorf("%w: ambiguous timestamps %q and %q", ErrInvalidDateFormat, candidate, m)
		}
	}

	at, err := time.Parse(InstantLayout, candidate)
	if err != nil {
		return Instant{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	return Instant{
		At:  at.UTC(),
		Day: timezone.StartOfDay(at, loc),
	}, nil
}

// ParseDay parses a YYYY-MM-DD calendar date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return day, nil
}
