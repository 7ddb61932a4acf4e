package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"context"
	"sync"
)

// CatalogFeedUseCase владеет курсором пагинации и накопленным списком
// проектов. Единственный писатель состояния; читатели получают копии
// через Snapshot.
//
// Машина состояний: idle -> loading -> ready <-> loading_more ->
// ready | exhausted | failed. Каждая загрузка помечается номером
// поколения: если фильтры успели смениться, пока запрос был в полете,
// устаревший ответ отбрасывается и не перетирает новое состояние.
type CatalogFeedUseCase struct {
	catalog  port.ProjectCatalogPort
	pageSize int

	mu             sync.Mutex
	applied        bool
	criteria       domain.FilterCriteria
	items          []domain.Project
	state          domain.FeedState
	hasMore        bool
	offset         int
	err            error
	generation     uint64
	cancelInFlight context.CancelFunc
}

func NewCatalogFeedUseCase(catalog port.ProjectCatalogPort) *CatalogFeedUseCase {
	return &CatalogFeedUseCase{
		catalog:  catalog,
		pageSize: constants.PageSize,
		state:    domain.FeedIdle,
	}
}

// ApplyCriteria применяет набор фильтров к ленте.
// Набор, равный текущему, - no-op: возвращается текущее состояние без
// обращения к backend. Новый набор отменяет незавершенную загрузку,
// сбрасывает курсор в ноль, отбрасывает накопленные проекты и
// загружает первую страницу. Устаревшие данные никогда не доклеиваются.
func (uc *CatalogFeedUseCase) ApplyCriteria(ctx context.Context, criteria domain.FilterCriteria) (domain.FeedSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CatalogFeed"})

	uc.mu.Lock()
	// Равные критерии после неудачной первой загрузки - это повтор попытки
	if uc.applied && uc.criteria.Equal(criteria) && uc.state != domain.FeedIdle && uc.state != domain.FeedFailed {
		snap := uc.snapshotLocked()
		uc.mu.Unlock()
		logger.Debug("Criteria unchanged, skipping refetch", nil)
		return snap, nil
	}

	// Новые фильтры вытесняют незавершенную загрузку
	if uc.cancelInFlight != nil {
		uc.cancelInFlight()
		uc.cancelInFlight = nil
	}
	uc.generation++
	gen := uc.generation

	uc.applied = true
	uc.criteria = criteria
	uc.items = nil
	uc.offset = 0
	uc.hasMore = false
	uc.err = nil
	uc.state = domain.FeedLoading

	fetchCtx, cancel := context.WithCancel(ctx)
	uc.cancelInFlight = cancel
	uc.mu.Unlock()

	logger.Info("Loading first catalog page", port.Fields{"criteria": criteria})

	projects, err := uc.catalog.ListProjects(fetchCtx, criteria, uc.pageSize, 0)
	cancel()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.generation {
		// Фильтры успели смениться, этот ответ уже никому не нужен
		logger.Debug("Discarding stale initial page", port.Fields{"generation": gen})
		return uc.snapshotLocked(), nil
	}
	uc.cancelInFlight = nil

	if err != nil {
		logger.Error("Initial catalog load failed", err, nil)
		uc.state = domain.FeedFailed
		uc.err = err
		uc.items = nil
		return uc.snapshotLocked(), err
	}

	uc.items = projects
	uc.offset = len(projects)
	uc.hasMore = len(projects) == uc.pageSize
	if uc.hasMore {
		uc.state = domain.FeedReady
	} else {
		uc.state = domain.FeedExhausted
	}

	logger.Info("First catalog page loaded", port.Fields{
		"items_loaded": len(projects),
		"has_more":     uc.hasMore,
	})
	return uc.snapshotLocked(), nil
}

// LoadMore догружает следующую страницу по сигналу "конец списка близко".
// Срабатывает только из состояния ready при hasMore=true; во всех прочих
// случаях сигнал игнорируется - не ставится в очередь и не считается ошибкой.
func (uc *CatalogFeedUseCase) LoadMore(ctx context.Context) (domain.FeedSnapshot, bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CatalogFeed"})

	uc.mu.Lock()
	if uc.state != domain.FeedReady || !uc.hasMore {
		snap := uc.snapshotLocked()
		uc.mu.Unlock()
		logger.Debug("LoadMore ignored", port.Fields{"state": string(snap.State), "has_more": snap.HasMore})
		return snap, false, nil
	}

	gen := uc.generation
	criteria := uc.criteria
	offset := uc.offset
	uc.state = domain.FeedLoadingMore
	uc.err = nil

	fetchCtx, cancel := context.WithCancel(ctx)
	uc.cancelInFlight = cancel
	uc.mu.Unlock()

	logger.Info("Loading next catalog page", port.Fields{"offset": offset})

	projects, err := uc.catalog.ListProjects(fetchCtx, criteria, uc.pageSize, offset)
	cancel()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if gen != uc.generation {
		logger.Debug("Discarding stale page", port.Fields{"offset": offset})
		return uc.snapshotLocked(), false, nil
	}
	uc.cancelInFlight = nil

	if err != nil {
		// Уже показанные проекты не трогаем; пагинация остановлена
		// до следующего сигнала от UI
		logger.Error("Load more failed, keeping current items", err, port.Fields{"offset": offset})
		uc.state = domain.FeedReady
		uc.err = err
		return uc.snapshotLocked(), true, err
	}

	uc.items = append(uc.items, projects...)
	uc.offset += len(projects)
	uc.hasMore = len(projects) == uc.pageSize
	if uc.hasMore {
		uc.state = domain.FeedReady
	} else {
		uc.state = domain.FeedExhausted
	}

	logger.Info("Next catalog page loaded", port.Fields{
		"items_loaded": len(projects),
		"items_total":  len(uc.items),
		"has_more":     uc.hasMore,
	})
	return uc.snapshotLocked(), true, nil
}

// Snapshot возвращает текущее состояние ленты без побочных эффектов.
func (uc *CatalogFeedUseCase) Snapshot() domain.FeedSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// snapshotLocked собирает срез состояния. Вызывается только под mu.
func (uc *CatalogFeedUseCase) snapshotLocked() domain.FeedSnapshot {
	items := make([]domain.Project, len(uc.items))
	copy(items, uc.items)
	return domain.FeedSnapshot{
		Criteria: uc.criteria,
		Items:    items,
		Visible:  ApplyClientFilters(items, uc.criteria),
		State:    uc.state,
		HasMore:  uc.hasMore,
		Err:      uc.err,
	}
}
