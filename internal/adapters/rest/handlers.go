package rest

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"catalog-frontend-service/internal/core/port/usecases_port"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CatalogHandlers struct {
	feedUC         usecases_port.CatalogFeedUseCase
	detailsUC      usecases_port.GetProjectDetailsUseCase
	callbackUC     usecases_port.SubmitCallbackUseCase
	mortgageUC     usecases_port.CalculateMortgageUseCase
	mortgageLeadUC usecases_port.RequestMortgageLeadUseCase
}

// NewCatalogHandlers - конструктор для наших обработчиков.
func NewCatalogHandlers(
	feedUC usecases_port.CatalogFeedUseCase,
	detailsUC usecases_port.GetProjectDetailsUseCase,
	callbackUC usecases_port.SubmitCallbackUseCase,
	mortgageUC usecases_port.CalculateMortgageUseCase,
	mortgageLeadUC usecases_port.RequestMortgageLeadUseCase,
) *CatalogHandlers {
	return &CatalogHandlers{
		feedUC:         feedUC,
		detailsUC:      detailsUC,
		callbackUC:     callbackUC,
		mortgageUC:     mortgageUC,
		mortgageLeadUC: mortgageLeadUC,
	}
}

// HandleGetCatalog - обработчик для GET /api/v1/catalog.
// Применяет критерии из query к ленте и возвращает ее снимок.
// Равные текущим критерии не вызывают перезагрузку.
func (h *CatalogHandlers) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetCatalog"})

	criteria := criteriaFromQuery(r)
	logger.Info("Received catalog request", port.Fields{"has_client_filters": criteria.HasClientFilters()})

	snapshot, err := h.feedUC.ApplyCriteria(r.Context(), criteria)
	if err != nil {
		// Ошибка загрузки уже зафиксирована в снимке (state=failed),
		// клиенту отдаем и статус, и снимок.
		logger.Error("Catalog load failed", err, nil)
		RespondWithJSON(w, statusForError(err), toFeedSnapshotDTO(snapshot))
		return
	}

	RespondWithJSON(w, http.StatusOK, toFeedSnapshotDTO(snapshot))
}

// HandleLoadMore - обработчик для POST /api/v1/catalog/load-more.
// Это сигнал "конец списка близко": когда лента не готова догружать
// (идет загрузка, список исчерпан, лента пуста), сигнал игнорируется
// и возвращается 204 без тела.
func (h *CatalogHandlers) HandleLoadMore(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleLoadMore"})

	snapshot, triggered, err := h.feedUC.LoadMore(r.Context())
	if !triggered {
		logger.Debug("Load-more signal ignored", port.Fields{"state": string(snapshot.State)})
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		// Накопленные элементы не теряются, лента вернулась в ready
		// и следующий сигнал повторит попытку.
		logger.Error("Load-more failed", err, nil)
		RespondWithJSON(w, statusForError(err), toFeedSnapshotDTO(snapshot))
		return
	}

	logger.Info("Loaded next page", port.Fields{"items_count": len(snapshot.Items), "has_more": snapshot.HasMore})
	RespondWithJSON(w, http.StatusOK, toFeedSnapshotDTO(snapshot))
}

// HandleGetProjectByID - обработчик для GET /api/v1/projects/{id}.
func (h *CatalogHandlers) HandleGetProjectByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetProjectByID"})

	id := chi.URLParam(r, "id")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Project id is required")
		return
	}

	project, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Проект не найден")
			return
		}
		logger.Error("Failed to load project", err, port.Fields{"project_id": id})
		WriteJSONError(w, statusForError(err), "Не удалось загрузить проект")
		return
	}

	RespondWithJSON(w, http.StatusOK, toProjectDetailDTO(*project))
}

// HandleSubmitCallback - обработчик для POST /api/v1/callbacks.
// Тело сначала проверяется JSON-схемой (форма), затем use case
// валидирует содержимое (имя, телефон, причина).
func (h *CatalogHandlers) HandleSubmitCallback(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSubmitCallback"})

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := callbackRequestSchema.Validate(raw); err != nil {
		logger.Warn("Callback body failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	var reqDTO CallbackRequestDTO
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := h.callbackUC.Execute(r.Context(), domain.CallbackLead{
		Name:      reqDTO.Name,
		Phone:     reqDTO.Phone,
		Reason:    reqDTO.Reason,
		ProjectID: reqDTO.ProjectID,
		HouseID:   reqDTO.HouseID,
		Notes:     reqDTO.Notes,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, http.StatusUnprocessableEntity, validationErr.Message)
			return
		}
		logger.Error("Failed to submit callback", err, nil)
		WriteJSONError(w, statusForError(err), "Ошибка при отправке формы")
		return
	}

	logger.Info("Callback submitted", port.Fields{"receipt_id": receipt.ID})
	RespondWithJSON(w, http.StatusCreated, CallbackResponseDTO{
		ID:      receipt.ID,
		Message: receipt.Message,
	})
}

// HandleMortgageQuote - обработчик для POST /api/v1/mortgage/quote.
// Чистый расчет: любые входные данные дают 200 с результатом,
// вырожденные параметры дают нулевой расчет.
func (h *CatalogHandlers) HandleMortgageQuote(w http.ResponseWriter, r *http.Request) {
	var reqDTO MortgageQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	quote := h.mortgageUC.Execute(termsFromDTO(reqDTO))
	RespondWithJSON(w, http.StatusOK, toMortgageQuoteResponseDTO(quote))
}

// HandleMortgageLead - обработчик для POST /api/v1/mortgage/leads.
// Расчет плюс заявка на консультацию одним вызовом.
func (h *CatalogHandlers) HandleMortgageLead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleMortgageLead"})

	var reqDTO MortgageLeadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := h.mortgageLeadUC.Execute(
		r.Context(),
		reqDTO.Name,
		reqDTO.Phone,
		reqDTO.ProjectID,
		termsFromDTO(reqDTO.MortgageQuoteRequestDTO),
	)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, http.StatusUnprocessableEntity, validationErr.Message)
			return
		}
		logger.Error("Failed to submit mortgage lead", err, nil)
		WriteJSONError(w, statusForError(err), "Ошибка при отправке формы")
		return
	}

	logger.Info("Mortgage lead submitted", port.Fields{"receipt_id": receipt.ID})
	RespondWithJSON(w, http.StatusCreated, CallbackResponseDTO{
		ID:      receipt.ID,
		Message: receipt.Message,
	})
}

// HandleGetCatalogOptions - обработчик для GET /api/v1/catalog/options.
// Отдает словари значений фильтров и форм подбора.
func (h *CatalogHandlers) HandleGetCatalogOptions(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, CatalogOptionsDTO{
		Districts:      constants.Districts,
		HousingTypes:   constants.HousingTypes,
		HousingClasses: constants.HousingClasses,
		PaymentTypes:   constants.PaymentTypes,
		FinishTypes:    constants.FinishTypes,
	})
}

// termsFromDTO достраивает параметры расчета: нулевые срок и ставка
// заменяются значениями по умолчанию, процент первоначального взноса
// при наличии имеет приоритет над абсолютной суммой.
func termsFromDTO(dto MortgageQuoteRequestDTO) domain.MortgageTerms {
	terms := domain.MortgageTerms{
		PropertyPrice: dto.PropertyPrice,
		DownPayment:   dto.DownPayment,
		TermYears:     dto.TermYears,
		AnnualRate:    dto.AnnualRate,
	}

	if dto.DownPaymentPercent > 0 {
		terms.DownPayment = int64(math.Round(float64(dto.PropertyPrice) * dto.DownPaymentPercent / 100))
	}
	if terms.TermYears <= 0 {
		terms.TermYears = constants.DefaultLoanTermYears
	}
	if terms.AnnualRate <= 0 {
		terms.AnnualRate = constants.DefaultAnnualRate
	}

	return terms
}
