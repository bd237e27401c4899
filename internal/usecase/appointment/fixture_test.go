package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/infra/repository"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

const testDay = "2024-05-01"

type fixture struct {
	repo   *repository.MemoryRepository
	log    *audit.MemoryLog
	events *audit.Dispatcher

	availability *GetAvailability
	book         *BookAppointment
	reschedule   *RescheduleAppointment
	cancel       *CancelAppointment
}

// unlocked lets every caller through so only the storage uniqueness guards admission.
type unlocked struct{}

func (unlocked) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// staleReads answers every appointment read as if the doctor's day were empty,
// the view a caller has when another instance commits between check and write.
// Writes still go through the unique (doctor, start) index.
type staleReads struct {
	*repository.MemoryRepository
}

func (staleReads) FindAppointmentAt(context.Context, uuid.UUID, time.Time) (*models.Appointment, error) {
	return nil, domain.ErrAppointmentNotFound
}

func (staleReads) FindAppointments(context.Context, uuid.UUID, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func newFixture(t *testing.T, locker lock.Locker) *fixture {
	t.Helper()
	return newFixtureOn(t, locker, func(r *repository.MemoryRepository) domain.Repository { return r })
}

// newFixtureOn runs the use cases against wrap(repo) while seeding and
// assertions use repo directly.
func newFixtureOn(
	t *testing.T,
	locker lock.Locker,
	wrap func(*repository.MemoryRepository) domain.Repository,
) *fixture {
	t.Helper()

	f := &fixture{
		repo: repository.NewMemoryRepository(),
		log:  audit.NewMemoryLog(),
	}
	f.events = audit.NewDispatcher(zerolog.Nop(), f.log)

	repo := wrap(f.repo)
	f.availability = NewGetAvailability(repo, time.UTC)
	admission := NewAdmission(repo, f.availability, locker, time.Second)
	f.book = NewBookAppointment(admission, f.events, zerolog.Nop())
	f.reschedule = NewRescheduleAppointment(admission, f.events, zerolog.Nop())
	f.cancel = NewCancelAppointment(repo, f.events)

	return f
}

// flush drains the audit dispatcher and returns the recorded actions.
func (f *fixture) flush(t *testing.T) []string {
	t.Helper()
	require.NoError(t, f.events.Close(context.Background()))
	return f.log.Actions()
}

func (f *fixture) doctor(t *testing.T, start, end string) uuid.UUID {
	t.Helper()
	d := &models.Doctor{
		ID:                uuid.New(),
		Name:              "Dr. Rao",
		Specialization:    "obstetrics",
		WorkingHoursStart: start,
		WorkingHoursEnd:   end,
	}
	require.NoError(t, f.repo.CreateDoctor(context.Background(), d))
	return d.ID
}

func at(clock string) time.Time {
	t, err := time.Parse(time.RFC3339, testDay+"T"+clock+":00Z")
	if err != nil {
		panic(err)
	}
	return t
}

func instant(clock string) string {
	return testDay + "T" + clock + ":00.000Z"
}

func clocks(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.UTC().Format("15:04"))
	}
	return out
}
