package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
)

// CancelAppointment removes an appointment. Cancelling an unknown id succeeds.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) error {

	ap, err := uc.repo.FindAppointment(ctx, appointmentID)
	if err != nil && !errors.Is(err, domain.ErrAppointmentNotFound) {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	if ap != nil {
		uc.audit.Dispatch(audit.Event{
			DoctorID: ap.DoctorID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"start": ap.StartTime},
		})
	}

	return nil
}
