package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID uuid.UUID
	Start         string
	// DurationMin of zero keeps the current duration.
	DurationMin int
}

// RescheduleAppointment moves an appointment to a new start and/or duration,
// re-running the admission checks with the appointment's own slot released.
type RescheduleAppointment struct {
	admission *Admission
	audit     *audit.Dispatcher
	log       zerolog.Logger
}

func NewRescheduleAppointment(
	admission *Admission,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		admission: admission,
		audit:     audit,
		log:       log,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	at, err := uc.admission.normalize(in.Start)
	if err != nil {
		return nil, err
	}

	repo := uc.admission.repo

	current, err := repo.FindAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.admission.acquire(ctx, current.DoctorID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// it may have been moved or cancelled while we waited
	ap, err := repo.FindAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	duration, minutes, err := resolveDuration(in.DurationMin, ap.DurationMin)
	if err != nil {
		return nil, err
	}

	doctor, err := repo.FindDoctor(ctx, ap.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := uc.admission.check(ctx, doctor, at, duration, ap.ID); err != nil {
		rejected(uc.log, uc.audit, doctor.ID, &ap.ID, at.At, err)
		return nil, err
	}

	previous := ap.StartTime
	ap.StartTime = at.At
	ap.EndTime = at.At.Add(duration)
	ap.DurationMin = minutes
	ap.UpdatedAt = time.Now().UTC()

	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotAlreadyBooked) {
			rejected(uc.log, uc.audit, ap.DoctorID, &ap.ID, at.At, err)
		} else {
			uc.log.Error().
				Err(err).
				Bool("retryable", httperr.IsRetryable(err)).
				Str("appointment_id", ap.ID.String()).
				Msg("reschedule commit failed")
		}
		return nil, err
	}

	uc.log.Info().
		Str("appointment_id", ap.ID.String()).
		Time("from", previous).
		Time("to", ap.StartTime).
		Msg("appointment rescheduled")

	uc.audit.Dispatch(audit.Event{
		DoctorID: ap.DoctorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from":     previous,
			"to":       ap.StartTime,
			"duration": ap.DurationMin,
		},
	})

	return ap, nil
}
