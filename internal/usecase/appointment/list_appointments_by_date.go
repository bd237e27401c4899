package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/dto"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
	date string,
) ([]dto.AppointmentListDTO, error) {

	day, err := domain.ParseDay(date, uc.loc)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.FindDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		doctorID,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			StartTime:       ap.StartTime,
			EndTime:         ap.EndTime,
			DurationMin:     ap.DurationMin,
			AppointmentType: ap.AppointmentType,
			PatientName:     ap.PatientName,
		})
	}
	return out
}
