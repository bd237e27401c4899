package appointment

import "time"

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func SlotAt(start time.Time) TimeSlot {
	return TimeSlot{Start: start, End: start.Add(SlotDuration)}
}
