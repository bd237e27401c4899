package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type AppointmentGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewAppointmentGormRepository bounds every call by timeout on top of the
// caller's context.
func NewAppointmentGormRepository(db *gorm.DB, timeout time.Duration) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, timeout: timeout}
}

func (r *AppointmentGormRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if r.timeout <= 0 {
		return r.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(ctx), cancel
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) FindDoctor(
	ctx context.Context,
	id uuid.UUID,
) (*models.Doctor, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var doctor models.Doctor
	if err := db.First(&doctor, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrDoctorNotFound)
	}
	return &doctor, nil
}

func (r *AppointmentGormRepository) CreateDoctor(
	ctx context.Context,
	d *models.Doctor,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translateWrite(db.Create(d).Error, domain.ErrDoctorAlreadyExists)
}

// --------------------------------------------------
// Appointment (lookup)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var ap models.Appointment
	if err := db.First(&ap, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrAppointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindAppointmentAt(
	ctx context.Context,
	doctorID uuid.UUID,
	at time.Time,
) (*models.Appointment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var ap models.Appointment
	if err := db.
		Where("doctor_id = ? AND start_time = ?", doctorID, at.UTC()).
		First(&ap).Error; err != nil {
		return nil, translate(err, domain.ErrAppointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindAppointments(
	ctx context.Context,
	doctorID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := db.
		Where(
			"doctor_id = ? AND start_time < ? AND end_time > ?",
			doctorID, to.UTC(), from.UTC(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, nil)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	doctorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := db.
		Where(
			"doctor_id = ? AND start_time >= ? AND start_time < ?",
			doctorID, start.UTC(), end.UTC(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, nil)
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// CreateAppointment relies on idx_appointments_doctor_start; a concurrent
// insert for the same doctor and start surfaces as ErrSlotAlreadyBooked.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translateWrite(db.Create(ap).Error, domain.ErrSlotAlreadyBooked)
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Model(ap).
		Select("start_time", "end_time", "duration_min", "updated_at").
		Updates(ap)
	if res.Error != nil {
		return translateWrite(res.Error, domain.ErrSlotAlreadyBooked)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return translate(db.Delete(&models.Appointment{}, "id = ?", id).Error, nil)
}

func (r *AppointmentGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return translate(err, nil)
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return translate(sqlDB.PingContext(ctx), nil)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
