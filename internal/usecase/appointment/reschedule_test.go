package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/infra/repository"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
)

func TestRescheduleAppointment_MovesAndFreesOldSlot(t *testing.T) {
	f := newFixture(t, lock.NewKeyedMutex())
	ctx := context.Background()
	doctorID := f.doctor(t, "09:00", "11:00")

	ap, err := f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("09:00"), PatientName: "Lata"})
	require.NoError(t, err)

	moved, err := f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: ap.ID, Start: instant("10:00")})
	require.NoError(t, err)
	assert.Equal(t, ap.ID, moved.ID)
	assert.Equal(t, at("10:00"), moved.StartTime)
	assert.Equal(t, at("10:30"), moved.EndTime)
	assert.Equal(t, "Lata", moved.PatientName)

	slots, err := f.availability.Execute(ctx, doctorID, testDay)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, clocks(slots))

	assert.Equal(t, []string{"appointment_created", "appointment_rescheduled"}, f.flush(t))
}

func TestRescheduleAppointment_OntoOwnSlotWithLongerDuration(t *testing.T) {
	f := newFixture(t, lock.NewKeyedMutex())
	ctx := context.Background()
	doctorID := f.doctor(t, "09:00", "10:00")

	ap, err := f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("09:00")})
	require.NoError(t, err)

	moved, err := f.reschedule.Execute(ctx, RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		Start:         instant("09:00"),
		DurationMin:   60,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, moved.DurationMin)
	assert.Equal(t, at("10:00"), moved.EndTime)

	slots, err := f.availability.Execute(ctx, doctorID, testDay)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestRescheduleAppointment_KeepsDurationWhenOmitted(t *testing.T) {
	f := newFixture(t, lock.NewKeyedMutex())
	doctorID := f.doctor(t, "09:00", "12:00")

	ap, err := f.book.Execute(context.Background(), BookAppointmentInput{DoctorID: doctorID, Start: instant("09:00"), DurationMin: 60})
	require.NoError(t, err)

	moved, err := f.reschedule.Execute(context.Background(), RescheduleAppointmentInput{AppointmentID: ap.ID, Start: instant("10:30")})
	require.NoError(t, err)
	assert.Equal(t, 60, moved.DurationMin)
	assert.Equal(t, at("11:30"), moved.EndTime)
}

func TestRescheduleAppointment_Rejections(t *testing.T) {
	f := newFixture(t, lock.NewKeyedMutex())
	ctx := context.Background()
	doctorID := f.doctor(t, "09:00", "11:00")

	first, err := f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("09:00")})
	require.NoError(t, err)
	_, err = f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("10:00")})
	require.NoError(t, err)

	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: uuid.New(), Start: instant("09:30")})
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: instant("10:00")})
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)

	// 09:30 is free but a 60 minute visit would run into 10:00
	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: instant("09:30"), DurationMin: 60})
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)

	for _, minutes := range []int{-30, MaxDurationMin + 1, 153722868} {
		_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: instant("09:30"), DurationMin: minutes})
		assert.ErrorIs(t, err, domain.ErrInvalidDuration, minutes)
	}

	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: instant("09:15")})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: "09:30"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)

	// rejected moves leave the appointment where it was
	stored, err := f.repo.FindAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, at("09:00"), stored.StartTime)

	// both slot conflicts are audited against the moved appointment
	assert.Equal(t, []string{
		"appointment_created",
		"appointment_created",
		"appointment_conflict",
		"appointment_conflict",
	}, f.flush(t))

	logs, _, err := f.log.List(ctx, audit.Filter{Action: "appointment_conflict"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.NotNil(t, logs[0].EntityID)
	assert.Equal(t, first.ID, *logs[0].EntityID)
}

func TestRescheduleAppointment_UniqueViolationAtCommit(t *testing.T) {
	f := newFixtureOn(t, lock.NewKeyedMutex(), func(r *repository.MemoryRepository) domain.Repository {
		return staleReads{r}
	})
	ctx := context.Background()
	doctorID := f.doctor(t, "09:00", "11:00")

	first, err := f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("09:00")})
	require.NoError(t, err)
	_, err = f.book.Execute(ctx, BookAppointmentInput{DoctorID: doctorID, Start: instant("10:00")})
	require.NoError(t, err)

	_, err = f.reschedule.Execute(ctx, RescheduleAppointmentInput{AppointmentID: first.ID, Start: instant("10:00")})
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)

	assert.Equal(t, []string{
		"appointment_created",
		"appointment_created",
		"appointment_conflict",
	}, f.flush(t))
}
