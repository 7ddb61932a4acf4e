package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"context"
)

// PrefetchCatalogUseCase - явный прогрев каталога при старте приложения.
// Заменяет собой неявный fetch при загрузке модуля из исходного клиента:
// вызывается из бутстрапа, отменяется контекстом приложения. Запрос
// best-effort: любые ошибки пишутся в Debug и наружу не всплывают.
type PrefetchCatalogUseCase struct {
	catalog port.ProjectCatalogPort
	logger  port.LoggerPort
}

func NewPrefetchCatalogUseCase(catalog port.ProjectCatalogPort, logger port.LoggerPort) *PrefetchCatalogUseCase {
	return &PrefetchCatalogUseCase{
		catalog: catalog,
		logger:  logger.WithFields(port.Fields{"use_case": "PrefetchCatalog"}),
	}
}

// Execute запрашивает первую страницу без фильтров. Fire-and-forget.
func (uc *PrefetchCatalogUseCase) Execute(ctx context.Context) {
	_, err := uc.catalog.ListProjects(ctx, domain.FilterCriteria{}, constants.PageSize, 0)
	if err != nil {
		uc.logger.Debug("Catalog prefetch skipped", port.Fields{"error": err.Error()})
		return
	}
	uc.logger.Debug("Catalog prefetch completed", nil)
}
