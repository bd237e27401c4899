package timezone

import (
	"fmt"
	"time"
)

// Fixed returns the single zone used for working hours and calendar days.
// There is no daylight-saving handling.
func Fixed(offsetMinutes int) *time.Location {
	if offsetMinutes == 0 {
		return time.UTC
	}

	sign := '+'
	abs := offsetMinutes
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/60, abs%60)
	return time.FixedZone(name, offsetMinutes*60)
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
