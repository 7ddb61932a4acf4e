package usecase

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
	"fmt"
)

// stubCatalog - настраиваемая заглушка каталожного порта.
type stubCatalog struct {
	listFn   func(ctx context.Context, criteria domain.FilterCriteria, limit, offset int) ([]domain.Project, error)
	getFn    func(ctx context.Context, id string) (*domain.Project, error)
	submitFn func(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error)
}

func (s *stubCatalog) ListProjects(ctx context.Context, criteria domain.FilterCriteria, limit, offset int) ([]domain.Project, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, criteria, limit, offset)
}

func (s *stubCatalog) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if s.getFn == nil {
		return nil, domain.ErrProjectNotFound
	}
	return s.getFn(ctx, id)
}

func (s *stubCatalog) SubmitCallback(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error) {
	if s.submitFn == nil {
		return &domain.CallbackReceipt{ID: "1"}, nil
	}
	return s.submitFn(ctx, lead)
}

// makeProjects генерирует страницу проектов с предсказуемыми ID.
func makeProjects(n int, prefix string) []domain.Project {
	projects := make([]domain.Project, n)
	for i := range projects {
		projects[i] = domain.Project{
			ID:   fmt.Sprintf("%s-%d", prefix, i+1),
			Name: fmt.Sprintf("ЖК %s %d", prefix, i+1),
		}
	}
	return projects
}
