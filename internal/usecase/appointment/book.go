package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID uuid.UUID

	// Start is the raw requested instant, YYYY-MM-DDTHH:MM:SS.mmmZ.
	Start       string
	DurationMin int

	AppointmentType string
	PatientName     string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	admission *Admission
	audit     *audit.Dispatcher
	log       zerolog.Logger
}

func NewBookAppointment(
	admission *Admission,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *BookAppointment {
	return &BookAppointment{
		admission: admission,
		audit:     audit,
		log:       log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Normalize the requested instant
	// --------------------------------------------------
	at, err := uc.admission.normalize(in.Start)
	if err != nil {
		return nil, err
	}

	duration, minutes, err := resolveDuration(in.DurationMin, int(domain.SlotDuration.Minutes()))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Serialize per doctor
	// --------------------------------------------------
	unlock, err := uc.admission.acquire(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	doctor, err := uc.admission.repo.FindDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Slot validation + conflict check
	// --------------------------------------------------
	if err := uc.admission.check(ctx, doctor, at, duration, uuid.Nil); err != nil {
		rejected(uc.log, uc.audit, doctor.ID, nil, at.At, err)
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Commit
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:              uuid.New(),
		DoctorID:        doctor.ID,
		StartTime:       at.At,
		EndTime:         at.At.Add(duration),
		DurationMin:     minutes,
		AppointmentType: strings.TrimSpace(in.AppointmentType),
		PatientName:     strings.TrimSpace(in.PatientName),
		Notes:           strings.TrimSpace(in.Notes),
	}

	if err := uc.admission.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotAlreadyBooked) {
			rejected(uc.log, uc.audit, doctor.ID, nil, at.At, err)
		} else {
			uc.log.Error().
				Err(err).
				Bool("retryable", httperr.IsRetryable(err)).
				Str("doctor_id", doctor.ID.String()).
				Msg("appointment commit failed")
		}
		return nil, err
	}

	uc.log.Info().
		Str("doctor_id", doctor.ID.String()).
		Str("appointment_id", ap.ID.String()).
		Time("start", ap.StartTime).
		Msg("appointment booked")

	uc.audit.Dispatch(audit.Event{
		DoctorID: doctor.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"start":    ap.StartTime,
			"duration": ap.DurationMin,
		},
	})

	return ap, nil
}
