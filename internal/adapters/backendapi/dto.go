package backendapi

import "encoding/json"

// projectResponse - сырой ресурс проекта, как его отдает backend.
// Часть полей приходит то в snake_case, то в camelCase, а images/features -
// то массивом, то JSON-строкой. Все варианты схлопываются в каноничную
// доменную форму в mapper.go, ровно один раз на границе API.
type projectResponse struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	District string      `json:"district"`

	Description          string `json:"description"`
	FullDescription      string `json:"full_description"`
	FullDescriptionAlias string `json:"fullDescription"`

	// Цены - слаботипизированные строки с валютой, иногда числа
	Price          json.RawMessage `json:"price"`
	PriceFrom      json.RawMessage `json:"price_from"`
	PriceFromAlias json.RawMessage `json:"priceFrom"`

	Completion string `json:"completion"`
	Floors     int    `json:"floors"`
	Apartments int    `json:"apartments"`
	Area       string `json:"area"`
	Parking    string `json:"parking"`

	Status            string `json:"status"`
	Discount          string `json:"discount"`
	HousingClass      string `json:"housing_class"`
	HousingClassAlias string `json:"housingClass"`

	Images   json.RawMessage `json:"images"`
	Features json.RawMessage `json:"features"`

	Rooms        json.RawMessage `json:"rooms"`
	PaymentTypes json.RawMessage `json:"payment_types"`
	FinishTypes  json.RawMessage `json:"finish_types"`
}

// callbackRequest - тело POST /api/v1/callbacks.
// Опциональные поля при отсутствии не сериализуются вовсе.
type callbackRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	ProjectID string `json:"project_id,omitempty"`
	HouseID   string `json:"house_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type callbackResponse struct {
	ID      json.Number `json:"id"`
	Message string      `json:"message"`
}

// apiErrorResponse - тело ошибки 4xx, может содержать message от сервера.
type apiErrorResponse struct {
	Message string `json:"message"`
}
