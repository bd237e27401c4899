package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func OverlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}

// SlotFree reports whether the grid slot starting at slotStart is clear of busy.
func SlotFree(slotStart time.Time, busy []Interval) bool {
	return !OverlapsAny(Interval{Start: slotStart, End: slotStart.Add(SlotDuration)}, busy)
}

// BusyIntervals converts appointments into intervals, leaving out exclude.
func BusyIntervals(apps []models.Appointment, exclude uuid.UUID) []Interval {
	busy := make([]Interval, 0, len(apps))
	for _, ap := range apps {
		if exclude != uuid.Nil && ap.ID == exclude {
			continue
		}
		busy = append(busy, IntervalOf(ap))
	}
	return busy
}

func IntervalOf(ap models.Appointment) Interval {
	end := ap.EndTime
	if end.IsZero() {
		end = ap.StartTime.Add(time.Duration(ap.DurationMin) * time.Minute)
	}
	return Interval{Start: ap.StartTime, End: end}
}
