package appointment

import (
	"fmt"
	"time"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// WorkingHours is a doctor's daily window as HH:MM wall-clock strings.
type WorkingHours struct {
	Start string
	End   string
}

func HoursOf(d *models.Doctor) WorkingHours {
	return WorkingHours{Start: d.WorkingHoursStart, End: d.WorkingHoursEnd}
}

func (wh WorkingHours) Validate() error {
	start, err := parseClock(wh.Start)
	if err != nil {
		return err
	}
	end, err := parseClock(wh.End)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWorkingHours, wh.Start, wh.End)
	}
	return nil
}

// Window returns the working window on day, a date in the service offset.
func (wh WorkingHours) Window(day time.Time) (time.Time, time.Time, error) {
	if err := wh.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	at := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			day.Location(),
		)
	}

	return at(wh.Start), at(wh.End), nil
}

// Contains reports whether [start, end) lies within the working window of day.
func (wh WorkingHours) Contains(day, start, end time.Time) (bool, error) {
	workStart, workEnd, err := wh.Window(day)
	if err != nil {
		return false, err
	}
	return !start.Before(workStart) && !end.After(workEnd), nil
}

// parseClock accepts strictly HH:MM and returns the offset from midnight.
func parseClock(hm string) (time.Duration, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWorkingHours, hm)
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWorkingHours, hm)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
