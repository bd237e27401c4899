package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

// Execute returns the free slot starts of a doctor on date (YYYY-MM-DD), in
// chronological order.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
	date string,
) ([]time.Time, error) {

	day, err := domain.ParseDay(date, uc.loc)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.repo.FindDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return uc.freeSlots(ctx, doctor, day, uuid.Nil)
}

// freeSlots computes availability with exclude left out of the busy set, so
// an appointment being rescheduled does not block itself.
func (uc *GetAvailability) freeSlots(
	ctx context.Context,
	doctor *models.Doctor,
	day time.Time,
	exclude uuid.UUID,
) ([]time.Time, error) {

	wh := domain.HoursOf(doctor)

	dayStart, dayEnd, err := wh.Window(day)
	if err != nil {
		return nil, err
	}

	grid, err := domain.GenerateSlots(wh, day)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.FindAppointments(ctx, doctor.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	busy := domain.BusyIntervals(appointments, exclude)

	slots := []time.Time{}
	for start := range grid {
		if domain.SlotFree(start, busy) {
			slots = append(slots, start)
		}
	}

	return slots, nil
}
