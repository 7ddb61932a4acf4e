package port

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
)

// ProjectCatalogPort объединяет все операции с backend API проектов.
// Реализация обязана вернуть проекты уже нормализованными: поля images
// и features - всегда срезы строк, алиасы snake_case/camelCase схлопнуты.
type ProjectCatalogPort interface {
	// ListProjects возвращает страницу проектов по серверной части критериев.
	// 404 от списочного эндпоинта означает пустой результат, не ошибку.
	ListProjects(ctx context.Context, criteria domain.FilterCriteria, limit, offset int) ([]domain.Project, error)

	// GetProject возвращает проект по идентификатору.
	// Отсутствие ресурса дает domain.ErrProjectNotFound.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// SubmitCallback отправляет заявку на обратный звонок.
	SubmitCallback(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error)
}
