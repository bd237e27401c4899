package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return uc.repo.FindAppointment(ctx, id)
}
