package domain

import "net/url"

// FilterCriteria - активный набор фильтров каталога.
// Поля делятся на две непересекающиеся группы:
//   - серверные (район, статус, класс жилья, диапазоны площади и цены) -
//     уходят в query-параметры запроса к backend;
//   - клиентские (тип жилья, вид оплаты, отделка) - применяются уже
//     к полученному списку, на сервер не отправляются.
//
// Числовые диапазоны хранятся строками: пустая строка означает "не ограничено".
type FilterCriteria struct {
	District     string
	Status       string
	HousingClass string
	AreaMin      string
	AreaMax      string
	PriceMin     string
	PriceMax     string

	HousingType string
	PaymentType string
	FinishType  string
}

// Equal сравнивает два набора фильтров. Установка равного значения
// не должна приводить к сбросу пагинации и повторной загрузке.
func (c FilterCriteria) Equal(other FilterCriteria) bool {
	return c == other
}

// ServerParams собирает query-параметры для backend API.
// Пустые значения не отправляются вовсе.
func (c FilterCriteria) ServerParams() url.Values {
	q := url.Values{}
	if c.District != "" {
		q.Set("district", c.District)
	}
	if c.Status != "" {
		q.Set("status", c.Status)
	}
	if c.HousingClass != "" {
		q.Set("housing_class", c.HousingClass)
	}
	if c.AreaMin != "" {
		q.Set("areaMin", c.AreaMin)
	}
	if c.AreaMax != "" {
		q.Set("areaMax", c.AreaMax)
	}
	if c.PriceMin != "" {
		q.Set("priceMin", c.PriceMin)
	}
	if c.PriceMax != "" {
		q.Set("priceMax", c.PriceMax)
	}
	return q
}

// HasClientFilters сообщает, есть ли активные клиентские предикаты.
func (c FilterCriteria) HasClientFilters() bool {
	return c.HousingType != "" || c.PaymentType != "" || c.FinishType != ""
}
