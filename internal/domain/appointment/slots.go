package appointment

import (
	"iter"
	"time"
)

// SlotDuration is the width of every grid slot.
const SlotDuration = 30 * time.Minute

// GenerateSlots yields slot starts from the beginning of working hours on day,
// one every SlotDuration, for as long as a whole slot fits before the end.
// The sequence can be ranged over any number of times.
func GenerateSlots(wh WorkingHours, day time.Time) (iter.Seq[time.Time], error) {
	start, end, err := wh.Window(day)
	if err != nil {
		return nil, err
	}

	return func(yield func(time.Time) bool) {
		for cur := start; !cur.Add(SlotDuration).After(end); cur = cur.Add(SlotDuration) {
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// OnGrid reports whether at is one of the slot starts of wh on day.
func OnGrid(wh WorkingHours, day, at time.Time) (bool, error) {
	slots, err := GenerateSlots(wh, day)
	if err != nil {
		return false, err
	}
	for s := range slots {
		if s.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}
