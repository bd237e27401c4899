package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// MemoryRepository keeps doctors and appointments in process memory. It
// enforces the same (doctor, start) uniqueness as the postgres schema and is
// used for APP_STORAGE=memory and in tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	doctors      map[uuid.UUID]models.Doctor
	appointments map[uuid.UUID]models.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		doctors:      make(map[uuid.UUID]models.Doctor),
		appointments: make(map[uuid.UUID]models.Appointment),
	}
}

func (r *MemoryRepository) FindDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	return &d, nil
}

func (r *MemoryRepository) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if _, ok := r.doctors[d.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDoctorAlreadyExists, d.ID)
	}
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now
	r.doctors[d.ID] = *d
	return nil
}

func (r *MemoryRepository) FindAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (r *MemoryRepository) FindAppointmentAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (*models.Appointment, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.StartTime.Equal(at) {
			return &ap, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *MemoryRepository) FindAppointments(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]models.Appointment, error) {
	window := domain.Interval{Start: from, End: to}
	return r.filter(ctx, func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID && domain.Overlaps(domain.IntervalOf(ap), window)
	})
}

func (r *MemoryRepository) ListAppointmentsForPeriod(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]models.Appointment, error) {
	return r.filter(ctx, func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID && !ap.StartTime.Before(start) && ap.StartTime.Before(end)
	})
}

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.assertUnique(*ap); err != nil {
		return err
	}
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	now := time.Now().UTC()
	ap.CreatedAt, ap.UpdatedAt = now, now
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if err := r.assertUnique(*ap); err != nil {
		return err
	}

	current.StartTime = ap.StartTime
	current.EndTime = ap.EndTime
	current.DurationMin = ap.DurationMin
	current.UpdatedAt = time.Now().UTC()
	r.appointments[ap.ID] = current
	*ap = current
	return nil
}

func (r *MemoryRepository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.appointments, id)
	return nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return alive(ctx)
}

// assertUnique mirrors idx_appointments_doctor_start. Callers hold r.mu.
func (r *MemoryRepository) assertUnique(ap models.Appointment) error {
	for id, other := range r.appointments {
		if id != ap.ID && other.DoctorID == ap.DoctorID && other.StartTime.Equal(ap.StartTime) {
			return fmt.Errorf("%w: unique (doctor_id, start_time)", domain.ErrSlotAlreadyBooked)
		}
	}
	return nil
}

func (r *MemoryRepository) filter(ctx context.Context, keep func(models.Appointment) bool) ([]models.Appointment, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func alive(ctx context.Context) error {
	return translate(ctx.Err(), nil)
}

var _ domain.Repository = (*MemoryRepository)(nil)
