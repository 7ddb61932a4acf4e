package usecases_port

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
)

// CatalogFeedUseCase - контроллер ленты каталога: курсор пагинации,
// накопленный список и флаги загрузки.
type CatalogFeedUseCase interface {
	// ApplyCriteria применяет набор фильтров. Равный текущему набор -
	// no-op без повторной загрузки; новый набор сбрасывает курсор в ноль,
	// отбрасывает накопленное и загружает первую страницу.
	ApplyCriteria(ctx context.Context, criteria domain.FilterCriteria) (domain.FeedSnapshot, error)

	// LoadMore - сигнал "конец списка близко". Загружает следующую страницу,
	// только когда лента в состоянии ready и есть что догружать; иначе
	// сигнал игнорируется (triggered=false) без ошибки.
	LoadMore(ctx context.Context) (snapshot domain.FeedSnapshot, triggered bool, err error)

	// Snapshot возвращает текущее состояние без побочных эффектов.
	Snapshot() domain.FeedSnapshot
}
