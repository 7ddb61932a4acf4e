package backendapi

import (
	"bytes"
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client - типизированный клиент backend API проектов.
// Кэша нет намеренно: каждый вызов - свежий запрос.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: constants.RequestTimeout,
		},
	}
}

// doRequest - внутренний хелпер для выполнения запросов.
// Прокидывает trace_id из контекста и общие заголовки.
func (c *Client) doRequest(ctx context.Context, method, requestURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	return resp, nil
}

// classifyTransportError разводит таймаут и проблему соединения:
// для пользователя это разные сообщения и разная retry-семантика.
func (c *Client) classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("request to backend timed out: %w", domain.ErrTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request to backend timed out: %w", domain.ErrTimeout)
	}
	return fmt.Errorf("request to backend failed: %v: %w", err, domain.ErrConnection)
}

// ListProjects запрашивает страницу проектов. В query уходят только
// серверные поля критериев плюс limit/offset; пустые значения
// не отправляются вовсе. 404 означает "ничего не найдено" и дает
// пустой срез, не ошибку.
func (c *Client) ListProjects(ctx context.Context, criteria domain.FilterCriteria, limit, offset int) ([]domain.Project, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "ListProjects",
	})

	u, err := url.Parse(c.baseURL + "/api/v1/projects")
	if err != nil {
		return nil, fmt.Errorf("backendapi: failed to build projects URL: %w", err)
	}
	q := criteria.ServerParams()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	logger.Debug("Sending request to backend", port.Fields{"url": u.String()})

	resp, err := c.doRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// "по фильтрам ничего нет" - ожидаемый исход
		logger.Info("Backend returned 404 for project list, treating as empty result", nil)
		return []domain.Project{}, nil
	}
	if err := c.checkStatus(resp); err != nil {
		logger.Error("Received error response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dtos []projectResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		logger.Error("Failed to decode response from backend", err, nil)
		return nil, fmt.Errorf("backendapi: failed to decode project list: %w", err)
	}

	projects := make([]domain.Project, len(dtos))
	for i, dto := range dtos {
		projects[i] = toDomainProject(dto, logger)
	}

	logger.Info("Successfully received project page", port.Fields{"projects_count": len(projects)})
	return projects, nil
}

// GetProject запрашивает один проект. Здесь 404 - уже ошибка.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "GetProject",
	})

	requestURL := fmt.Sprintf("%s/api/v1/projects/%s", c.baseURL, url.PathEscape(id))
	logger.Debug("Sending request to backend", port.Fields{"url": requestURL})

	resp, err := c.doRequest(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
	}
	if err := c.checkStatus(resp); err != nil {
		logger.Error("Received error response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto projectResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		logger.Error("Failed to decode response from backend", err, nil)
		return nil, fmt.Errorf("backendapi: failed to decode project: %w", err)
	}

	project := toDomainProject(dto, logger)
	logger.Info("Successfully received project", port.Fields{"project_id": project.ID})
	return &project, nil
}

// SubmitCallback отправляет заявку. 4xx поднимается как ValidationError
// с сообщением сервера, если оно было в теле ответа.
func (c *Client) SubmitCallback(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "SubmitCallback",
	})

	payload, err := json.Marshal(toCallbackRequest(lead))
	if err != nil {
		return nil, fmt.Errorf("backendapi: failed to marshal callback: %w", err)
	}

	requestURL := c.baseURL + "/api/v1/callbacks"
	logger.Debug("Sending callback to backend", port.Fields{"url": requestURL, "reason": lead.Reason})

	resp, err := c.doRequest(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var apiErr apiErrorResponse
		message := "Ошибка при отправке формы"
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			message = apiErr.Message
		}
		logger.Warn("Backend rejected callback", port.Fields{"status_code": resp.StatusCode, "message": message})
		return nil, &domain.ValidationError{Message: message}
	}
	if err := c.checkStatus(resp); err != nil {
		logger.Error("Received error response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var receipt callbackResponse
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		logger.Error("Failed to decode response from backend", err, nil)
		return nil, fmt.Errorf("backendapi: failed to decode callback receipt: %w", err)
	}

	logger.Info("Callback accepted by backend", port.Fields{"receipt_id": receipt.ID.String()})
	return &domain.CallbackReceipt{
		ID:      receipt.ID.String(),
		Message: receipt.Message,
	}, nil
}

// checkStatus превращает неуспешные статусы в типизированные ошибки.
func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return &domain.ServerError{StatusCode: resp.StatusCode}
	default:
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
	}
}
