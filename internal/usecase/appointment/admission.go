package appointment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// Admission holds what booking and rescheduling share: the per-doctor lock
// and the slot/conflict checks that run while it is held.
type Admission struct {
	repo         domain.Repository
	availability *GetAvailability
	locker       lock.Locker
	lockTimeout  time.Duration
}

func NewAdmission(
	repo domain.Repository,
	availability *GetAvailability,
	locker lock.Locker,
	lockTimeout time.Duration,
) *Admission {
	return &Admission{
		repo:         repo,
		availability: availability,
		locker:       locker,
		lockTimeout:  lockTimeout,
	}
}

func (a *Admission) normalize(raw string) (domain.Instant, error) {
	return domain.NormalizeInstant(raw, a.availability.loc)
}

// acquire serializes admission for one doctor. Waiting longer than the lock
// timeout is reported as a retryable persistence timeout.
func (a *Admission) acquire(ctx context.Context, doctorID uuid.UUID) (func(), error) {
	lockCtx := ctx
	if a.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, a.lockTimeout)
		defer cancel()
	}

	unlock, err := a.locker.Lock(lockCtx, doctorID.String())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: waiting for doctor %s: %v", domain.ErrPersistenceTimeout, doctorID, err)
		}
		return nil, fmt.Errorf("%w: lock: %v", domain.ErrPersistenceUnavailable, err)
	}
	return unlock, nil
}

// check validates that [at, at+duration) can be admitted for doctor. exclude
// names an appointment that must not count as a conflict (the one being
// rescheduled); uuid.Nil for new bookings.
func (a *Admission) check(
	ctx context.Context,
	doctor *models.Doctor,
	at domain.Instant,
	duration time.Duration,
	exclude uuid.UUID,
) error {

	wh := domain.HoursOf(doctor)
	requested := domain.Interval{Start: at.At, End: at.At.Add(duration)}

	// --------------------------------------------------
	// Slot validation
	// --------------------------------------------------
	onGrid, err := domain.OnGrid(wh, at.Day, at.At)
	if err != nil {
		return err
	}
	if !onGrid {
		return fmt.Errorf("%w: %s is not a slot start", domain.ErrSlotUnavailable, at.At.Format(domain.InstantLayout))
	}

	within, err := wh.Contains(at.Day, requested.Start, requested.End)
	if err != nil {
		return err
	}
	if !within {
		return fmt.Errorf("%w: %s + %s runs past working hours", domain.ErrSlotUnavailable, at.At.Format(domain.InstantLayout), duration)
	}

	free, err := a.availability.freeSlots(ctx, doctor, at.Day, exclude)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(free, at.At.Equal) {
		return fmt.Errorf("%w: %s is taken", domain.ErrSlotAlreadyBooked, at.At.Format(domain.InstantLayout))
	}

	// --------------------------------------------------
	// Conflict check
	// --------------------------------------------------
	existing, err := a.repo.FindAppointmentAt(ctx, doctor.ID, at.At)
	switch {
	case err == nil && existing.ID != exclude:
		return fmt.Errorf("%w: appointment %s starts at %s", domain.ErrSlotAlreadyBooked, existing.ID, at.At.Format(domain.InstantLayout))
	case err != nil && !errors.Is(err, domain.ErrAppointmentNotFound):
		return err
	}

	overlapping, err := a.repo.FindAppointments(ctx, doctor.ID, requested.Start, requested.End)
	if err != nil {
		return err
	}
	if domain.OverlapsAny(requested, domain.BusyIntervals(overlapping, exclude)) {
		return fmt.Errorf("%w: %s + %s overlaps another appointment", domain.ErrSlotAlreadyBooked, at.At.Format(domain.InstantLayout), duration)
	}

	return nil
}

// MaxDurationMin bounds a single appointment to one day.
const MaxDurationMin = 24 * 60

func resolveDuration(minutes, fallback int) (time.Duration, int, error) {
	if minutes == 0 {
		minutes = fallback
	}
	if minutes <= 0 || minutes > MaxDurationMin {
		return 0, 0, fmt.Errorf("%w: %d minutes", domain.ErrInvalidDuration, minutes)
	}
	return time.Duration(minutes) * time.Minute, minutes, nil
}

// rejected records an admission that did not commit. Conflicts, whether caught
// by the checks or by the unique index at commit, are also audited.
// appointmentID is set when an existing appointment was being moved.
func rejected(
	log zerolog.Logger,
	events *audit.Dispatcher,
	doctorID uuid.UUID,
	appointmentID *uuid.UUID,
	start time.Time,
	err error,
) {
	ev := log.Debug().Err(err).Str("doctor_id", doctorID.String()).Time("start", start)
	if appointmentID != nil {
		ev = ev.Str("appointment_id", appointmentID.String())
	}
	ev.Msg("admission rejected")

	if !errors.Is(err, domain.ErrSlotAlreadyBooked) {
		return
	}

	events.Dispatch(audit.Event{
		DoctorID: doctorID,
		Action:   "appointment_conflict",
		Entity:   "appointment",
		EntityID: appointmentID,
		Metadata: map[string]any{"start": start},
	})
}
