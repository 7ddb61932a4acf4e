package usecases_port

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
)

type GetProjectDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Project, error)
}
