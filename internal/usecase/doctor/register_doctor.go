package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type RegisterDoctorInput struct {
	Name              string
	Specialization    string
	WorkingHoursStart string
	WorkingHoursEnd   string
}

type RegisterDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterDoctor(repo domain.Repository, audit *audit.Dispatcher) *RegisterDoctor {
	return &RegisterDoctor{repo: repo, audit: audit}
}

func (uc *RegisterDoctor) Execute(ctx context.Context, in RegisterDoctorInput) (*models.Doctor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", httperr.ErrBusiness(httperr.CodeInvalidRequest))
	}

	wh := domain.WorkingHours{
		Start: strings.TrimSpace(in.WorkingHoursStart),
		End:   strings.TrimSpace(in.WorkingHoursEnd),
	}
	if err := wh.Validate(); err != nil {
		return nil, err
	}

	d := &models.Doctor{
		ID:                uuid.New(),
		Name:              name,
		Specialization:    strings.TrimSpace(in.Specialization),
		WorkingHoursStart: wh.Start,
		WorkingHoursEnd:   wh.End,
	}

	if err := uc.repo.CreateDoctor(ctx, d); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		DoctorID: d.ID,
		Action:   "doctor_registered",
		Entity:   "doctor",
		EntityID: &d.ID,
	})

	return d, nil
}
