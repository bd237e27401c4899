package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %04d-%02d", domain.ErrInvalidDate, year, month)
	}

	if _, err := uc.repo.FindDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		doctorID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}
