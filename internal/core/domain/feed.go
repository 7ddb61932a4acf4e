package domain

// FeedState - состояние контроллера ленты каталога.
type FeedState string

const (
	FeedIdle        FeedState = "idle"
	FeedLoading     FeedState = "loading"
	FeedReady       FeedState = "ready"
	FeedLoadingMore FeedState = "loading_more"
	FeedExhausted   FeedState = "exhausted"
	FeedFailed      FeedState = "failed"
)

// FeedSnapshot - согласованный срез состояния ленты на момент вызова.
// Items - все накопленные проекты, Visible - подмножество после применения
// клиентских фильтров. Оба среза - копии, изменять их безопасно.
type FeedSnapshot struct {
	Criteria FilterCriteria
	Items    []Project
	Visible  []Project
	State    FeedState
	HasMore  bool
	Err      error
}
