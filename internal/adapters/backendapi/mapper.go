package backendapi

import (
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"encoding/json"
)

// decodeString разбирает слаботипизированное поле: строка, число или null.
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// decodeStringList нормализует поле, которое приходит либо готовым
// массивом строк, либо JSON-строкой с закодированным массивом.
// Битый JSON дает пустой срез, не ошибку. Результат никогда не nil.
func decodeStringList(raw json.RawMessage, logger port.LoggerPort) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return []string{}
		}
		if err := json.Unmarshal([]byte(encoded), &list); err != nil || list == nil {
			logger.Warn("Failed to decode JSON-encoded array field", port.Fields{"value": encoded})
			return []string{}
		}
		return list
	}

	logger.Warn("Unexpected array field shape", port.Fields{"raw": string(raw)})
	return []string{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// toDomainProject превращает сырой ресурс в доменную модель.
// Это единственное место, где живут алиасы полей и двоякая кодировка
// массивов; глубже по стеку эти варианты не просачиваются.
func toDomainProject(dto projectResponse, logger port.LoggerPort) domain.Project {
	id := dto.ID.String()
	if id == "" {
		id = "0"
	}

	return domain.Project{
		ID:              id,
		Name:            dto.Name,
		District:        dto.District,
		Description:     dto.Description,
		FullDescription: firstNonEmpty(dto.FullDescription, dto.FullDescriptionAlias),

		Price:     decodeString(dto.Price),
		PriceFrom: firstNonEmpty(decodeString(dto.PriceFrom), decodeString(dto.PriceFromAlias)),

		Completion: dto.Completion,
		Floors:     dto.Floors,
		Apartments: dto.Apartments,
		Area:       dto.Area,
		Parking:    dto.Parking,

		Status:       dto.Status,
		Discount:     dto.Discount,
		HousingClass: firstNonEmpty(dto.HousingClass, dto.HousingClassAlias),

		Images:   decodeStringList(dto.Images, logger),
		Features: decodeStringList(dto.Features, logger),

		Rooms:        decodeStringList(dto.Rooms, logger),
		PaymentTypes: decodeStringList(dto.PaymentTypes, logger),
		FinishTypes:  decodeStringList(dto.FinishTypes, logger),
	}
}

// toCallbackRequest собирает тело запроса: имя и телефон уже
// провалидированы и обрезаны на уровне use case.
func toCallbackRequest(lead domain.CallbackLead) callbackRequest {
	return callbackRequest{
		Name:      lead.Name,
		Phone:     lead.Phone,
		Reason:    lead.Reason,
		ProjectID: lead.ProjectID,
		HouseID:   lead.HouseID,
		Notes:     lead.Notes,
	}
}
