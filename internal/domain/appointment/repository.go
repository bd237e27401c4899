package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// Repository is the persistence collaborator of the booking engine.
// Implementations translate storage failures into ErrPersistenceTimeout or
// ErrPersistenceUnavailable, and uniqueness violations on
// (doctor, start) into ErrSlotAlreadyBooked.
type Repository interface {
	// -------- Doctor --------
	FindDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
	CreateDoctor(ctx context.Context, d *models.Doctor) error

	// -------- Appointment (lookup) --------
	FindAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	FindAppointmentAt(
		ctx context.Context,
		doctorID uuid.UUID,
		at time.Time,
	) (*models.Appointment, error)

	// FindAppointments returns appointments overlapping [from, to), ordered by start.
	FindAppointments(
		ctx context.Context,
		doctorID uuid.UUID,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsForPeriod returns appointments starting in [start, end).
	ListAppointmentsForPeriod(
		ctx context.Context,
		doctorID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// DeleteAppointment succeeds whether or not the appointment exists.
	DeleteAppointment(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
}
