package doctor

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

type GetDoctor struct {
	repo domain.Repository
}

func NewGetDoctor(repo domain.Repository) *GetDoctor {
	return &GetDoctor{repo: repo}
}

func (uc *GetDoctor) Execute(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	return uc.repo.FindDoctor(ctx, id)
}
