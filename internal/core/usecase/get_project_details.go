package usecase

import (
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"context"
)

type GetProjectDetailsUseCase struct {
	catalog port.ProjectCatalogPort
}

func NewGetProjectDetailsUseCase(catalog port.ProjectCatalogPort) *GetProjectDetailsUseCase {
	return &GetProjectDetailsUseCase{catalog: catalog}
}

func (uc *GetProjectDetailsUseCase) Execute(ctx context.Context, id string) (*domain.Project, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetProjectDetails",
		"project_id": id,
	})

	logger.Debug("Use case started", nil)

	project, err := uc.catalog.GetProject(ctx, id)
	if err != nil {
		logger.Error("Failed to get project", err, nil)
		return nil, err
	}

	logger.Info("Project details loaded", port.Fields{"name": project.Name})
	return project, nil
}
