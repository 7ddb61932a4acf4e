package rest

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-frontend-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	applyFn func(ctx context.Context, criteria domain.FilterCriteria) (domain.FeedSnapshot, error)
	loadFn  func(ctx context.Context) (domain.FeedSnapshot, bool, error)
	snap    domain.FeedSnapshot
}

func (s *stubFeed) ApplyCriteria(ctx context.Context, criteria domain.FilterCriteria) (domain.FeedSnapshot, error) {
	if s.applyFn == nil {
		return s.snap, nil
	}
	return s.applyFn(ctx, criteria)
}

func (s *stubFeed) LoadMore(ctx context.Context) (domain.FeedSnapshot, bool, error) {
	if s.loadFn == nil {
		return s.snap, false, nil
	}
	return s.loadFn(ctx)
}

func (s *stubFeed) Snapshot() domain.FeedSnapshot { return s.snap }

type stubDetails struct {
	project *domain.Project
	err     error
}

func (s *stubDetails) Execute(context.Context, string) (*domain.Project, error) {
	return s.project, s.err
}

type stubCallback struct {
	gotLead domain.CallbackLead
	receipt *domain.CallbackReceipt
	err     error
}

func (s *stubCallback) Execute(_ context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error) {
	s.gotLead = lead
	return s.receipt, s.err
}

type stubMortgageLead struct {
	gotName  string
	gotPhone string
	gotTerms domain.MortgageTerms
	receipt  *domain.CallbackReceipt
	err      error
}

func (s *stubMortgageLead) Execute(_ context.Context, name, phone, _ string, terms domain.MortgageTerms) (*domain.CallbackReceipt, error) {
	s.gotName = name
	s.gotPhone = phone
	s.gotTerms = terms
	return s.receipt, s.err
}

// newTestRouter собирает роутер с теми же маршрутами, что и боевой сервер.
func newTestRouter(h *CatalogHandlers) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", h.HandleGetCatalog)
		r.Post("/catalog/load-more", h.HandleLoadMore)
		r.Get("/catalog/options", h.HandleGetCatalogOptions)
		r.Get("/projects/{id}", h.HandleGetProjectByID)
		r.Post("/callbacks", h.HandleSubmitCallback)
		r.Post("/mortgage/quote", h.HandleMortgageQuote)
		r.Post("/mortgage/leads", h.HandleMortgageLead)
	})
	return r
}

func newHandlers(feed *stubFeed, details *stubDetails, callback *stubCallback, mortgageLead *stubMortgageLead) *CatalogHandlers {
	if feed == nil {
		feed = &stubFeed{}
	}
	if details == nil {
		details = &stubDetails{}
	}
	if callback == nil {
		callback = &stubCallback{receipt: &domain.CallbackReceipt{ID: "1"}}
	}
	if mortgageLead == nil {
		mortgageLead = &stubMortgageLead{receipt: &domain.CallbackReceipt{ID: "1"}}
	}
	return NewCatalogHandlers(feed, details, callback, usecase.NewCalculateMortgageUseCase(), mortgageLead)
}

func TestHandleGetCatalog(t *testing.T) {
	var gotCriteria domain.FilterCriteria
	feed := &stubFeed{
		applyFn: func(_ context.Context, criteria domain.FilterCriteria) (domain.FeedSnapshot, error) {
			gotCriteria = criteria
			return domain.FeedSnapshot{
				State:   domain.FeedReady,
				HasMore: true,
				Items: []domain.Project{
					{ID: "1", Name: "ЖК Первый", Price: "420 000", Rooms: []string{"1к", "2к", "3к"}},
				},
				Visible: []domain.Project{
					{ID: "1", Name: "ЖК Первый", Price: "420 000", Rooms: []string{"1к", "2к", "3к"}},
				},
			}, nil
		},
	}

	router := newTestRouter(newHandlers(feed, nil, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/catalog?district=Ленинский+район&housing_type=Студия&priceMin=5000000", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Ленинский район", gotCriteria.District)
	assert.Equal(t, "Студия", gotCriteria.HousingType)
	assert.Equal(t, "5000000", gotCriteria.PriceMin)

	var body FeedSnapshotDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.State)
	assert.True(t, body.HasMore)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "1к-3к", body.Items[0].RoomsLabel)
	// Класс жилья выведен из цены, backend его не прислал
	assert.Equal(t, "Премиум", body.Items[0].HousingClass)
	assert.Nil(t, body.Error)
}

func TestHandleGetCatalogLoadFailure(t *testing.T) {
	feed := &stubFeed{
		applyFn: func(_ context.Context, _ domain.FilterCriteria) (domain.FeedSnapshot, error) {
			return domain.FeedSnapshot{
				State:   domain.FeedFailed,
				Items:   []domain.Project{},
				Visible: []domain.Project{},
				Err:     domain.ErrConnection,
			}, domain.ErrConnection
		},
	}

	router := newTestRouter(newHandlers(feed, nil, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body FeedSnapshotDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed", body.State)
	require.NotNil(t, body.Error)
	assert.True(t, body.Error.Retryable)
}

func TestHandleLoadMoreIgnoredSignal(t *testing.T) {
	feed := &stubFeed{
		loadFn: func(context.Context) (domain.FeedSnapshot, bool, error) {
			return domain.FeedSnapshot{State: domain.FeedExhausted}, false, nil
		},
	}

	router := newTestRouter(newHandlers(feed, nil, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/load-more", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleLoadMoreTimeoutKeepsSnapshot(t *testing.T) {
	feed := &stubFeed{
		loadFn: func(context.Context) (domain.FeedSnapshot, bool, error) {
			return domain.FeedSnapshot{
				State:   domain.FeedReady,
				HasMore: true,
				Items:   []domain.Project{{ID: "1"}},
				Visible: []domain.Project{{ID: "1"}},
				Err:     domain.ErrTimeout,
			}, true, domain.ErrTimeout
		},
	}

	router := newTestRouter(newHandlers(feed, nil, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/load-more", nil))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var body FeedSnapshotDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.State)
	assert.Len(t, body.Items, 1)
	require.NotNil(t, body.Error)
	assert.True(t, body.Error.Retryable)
}

func TestHandleGetProjectByID(t *testing.T) {
	details := &stubDetails{
		project: &domain.Project{
			ID:           "5",
			Name:         "ЖК Пятый",
			Price:        "260 000",
			Area:         "от 35 до 120 м²",
			Rooms:        []string{"Студия", "3к"},
			PaymentTypes: []string{"ипотека"},
		},
	}

	router := newTestRouter(newHandlers(nil, details, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body ProjectDetailDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "5", body.ID)
	assert.Equal(t, 35, body.AreaMin)
	assert.Equal(t, 120, body.AreaMax)
	assert.Equal(t, "Студия, 3к", body.RoomsLabel)
	assert.Equal(t, "Комфорт", body.HousingClass)
}

func TestHandleGetProjectByIDNotFound(t *testing.T) {
	details := &stubDetails{err: domain.ErrProjectNotFound}

	router := newTestRouter(newHandlers(nil, details, nil, nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSubmitCallback(t *testing.T) {
	t.Run("успешная заявка", func(t *testing.T) {
		callback := &stubCallback{receipt: &domain.CallbackReceipt{ID: "42", Message: "Заявка принята"}}
		router := newTestRouter(newHandlers(nil, nil, callback, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/callbacks",
			strings.NewReader(`{"name": "Анна", "phone": "79123456789", "reason": "консультация", "project_id": "7"}`)))

		require.Equal(t, http.StatusCreated, rec.Code)

		var body CallbackResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "42", body.ID)
		assert.Equal(t, "Анна", callback.gotLead.Name)
		assert.Equal(t, "7", callback.gotLead.ProjectID)
	})

	t.Run("схема отклоняет тело без обязательных полей", func(t *testing.T) {
		router := newTestRouter(newHandlers(nil, nil, nil, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/callbacks",
			strings.NewReader(`{"name": "Анна"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("схема отклоняет неизвестные поля", func(t *testing.T) {
		router := newTestRouter(newHandlers(nil, nil, nil, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/callbacks",
			strings.NewReader(`{"name": "Анна", "phone": "79123456789", "reason": "консультация", "admin": true}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ошибка валидации use case дает 422", func(t *testing.T) {
		callback := &stubCallback{err: &domain.ValidationError{Message: "Имя должно содержать минимум 2 символа"}}
		router := newTestRouter(newHandlers(nil, nil, callback, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/callbacks",
			strings.NewReader(`{"name": "А", "phone": "79123456789", "reason": "консультация"}`)))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Имя должно содержать минимум 2 символа", body["error"])
	})

	t.Run("пустое тело", func(t *testing.T) {
		router := newTestRouter(newHandlers(nil, nil, nil, nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/callbacks", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleMortgageQuote(t *testing.T) {
	router := newTestRouter(newHandlers(nil, nil, nil, nil))

	t.Run("полные параметры", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mortgage/quote",
			strings.NewReader(`{"property_price": 10000000, "down_payment": 2000000, "term_years": 20, "annual_rate": 8.5}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		var body MortgageQuoteResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(8_000_000), body.LoanAmount)
		assert.Equal(t, int64(69_426), body.MonthlyPayment)
		assert.Equal(t, "8 000 000", body.Formatted.LoanAmount)
		assert.Equal(t, "69 426", body.Formatted.MonthlyPayment)
	})

	t.Run("срок и ставка по умолчанию", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mortgage/quote",
			strings.NewReader(`{"property_price": 10000000, "down_payment": 2000000}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		var body MortgageQuoteResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		// 20 лет и 8.5% подставлены по умолчанию
		assert.Equal(t, int64(69_426), body.MonthlyPayment)
	})

	t.Run("взнос процентом от стоимости", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mortgage/quote",
			strings.NewReader(`{"property_price": 10000000, "down_payment_percent": 20, "term_years": 20, "annual_rate": 8.5}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		var body MortgageQuoteResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(8_000_000), body.LoanAmount)
	})

	t.Run("вырожденные параметры дают нулевой расчет", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mortgage/quote",
			strings.NewReader(`{"property_price": 2000000, "down_payment": 3000000}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		var body MortgageQuoteResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Zero(t, body.LoanAmount)
		assert.Zero(t, body.MonthlyPayment)
	})
}

func TestHandleMortgageLead(t *testing.T) {
	lead := &stubMortgageLead{receipt: &domain.CallbackReceipt{ID: "9", Message: "Заявка принята"}}
	router := newTestRouter(newHandlers(nil, nil, nil, lead))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/mortgage/leads",
		strings.NewReader(`{"name": "Анна", "phone": "79123456789", "project_id": "7", "property_price": 10000000, "down_payment": 2000000}`)))

	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "Анна", lead.gotName)
	assert.Equal(t, "79123456789", lead.gotPhone)
	assert.Equal(t, int64(10_000_000), lead.gotTerms.PropertyPrice)
	// Значения по умолчанию подставлены до вызова use case
	assert.Equal(t, 20, lead.gotTerms.TermYears)
	assert.Equal(t, 8.5, lead.gotTerms.AnnualRate)
}

func TestHandleGetCatalogOptions(t *testing.T) {
	router := newTestRouter(newHandlers(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/options", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body CatalogOptionsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Districts)
	assert.Contains(t, body.HousingTypes, "Студия")
	assert.Contains(t, body.HousingClasses, "Премиум")
	assert.Contains(t, body.PaymentTypes, "ипотека")
}
