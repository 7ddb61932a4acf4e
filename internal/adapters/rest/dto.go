package rest

import (
	"catalog-frontend-service/internal/core/domain"
	"net/http"
)

// ProjectCardDTO - карточка проекта в ленте каталога.
// Поля уже нормализованы: roomsLabel схлопывает последовательные
// варианты в диапазон ("1к-3к"), класс жилья при отсутствии метки
// выводится из цены.
type ProjectCardDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	District     string   `json:"district"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	PriceFrom    string   `json:"price_from,omitempty"`
	Status       string   `json:"status,omitempty"`
	Discount     string   `json:"discount,omitempty"`
	HousingClass string   `json:"housing_class"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Rooms        []string `json:"rooms"`
	RoomsLabel   string   `json:"rooms_label"`
}

// ProjectDetailDTO - полная карточка для страницы проекта.
type ProjectDetailDTO struct {
	ProjectCardDTO

	FullDescription string   `json:"full_description"`
	Completion      string   `json:"completion,omitempty"`
	Floors          int      `json:"floors,omitempty"`
	Apartments      int      `json:"apartments,omitempty"`
	Area            string   `json:"area,omitempty"`
	AreaMin         int      `json:"area_min,omitempty"`
	AreaMax         int      `json:"area_max,omitempty"`
	Parking         string   `json:"parking,omitempty"`
	PaymentTypes    []string `json:"payment_types"`
	FinishTypes     []string `json:"finish_types"`
}

// FeedErrorDTO - ошибка последней загрузки ленты.
type FeedErrorDTO struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// FeedSnapshotDTO - состояние ленты каталога: накопленные элементы,
// видимое подмножество после клиентских фильтров и флаги пагинации.
type FeedSnapshotDTO struct {
	State   string           `json:"state"`
	HasMore bool             `json:"has_more"`
	Items   []ProjectCardDTO `json:"items"`
	Visible []ProjectCardDTO `json:"visible"`
	Error   *FeedErrorDTO    `json:"error,omitempty"`
}

// CallbackRequestDTO - тело POST /api/v1/callbacks.
type CallbackRequestDTO struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
	ProjectID string `json:"project_id"`
	HouseID   string `json:"house_id"`
	Notes     string `json:"notes"`
}

// CallbackResponseDTO - подтверждение принятой заявки.
type CallbackResponseDTO struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MortgageQuoteRequestDTO - параметры расчета ипотеки.
// DownPaymentPercent - альтернатива абсолютному взносу: при ненулевом
// значении взнос вычисляется как процент от стоимости.
type MortgageQuoteRequestDTO struct {
	PropertyPrice      int64   `json:"property_price"`
	DownPayment        int64   `json:"down_payment"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	TermYears          int     `json:"term_years"`
	AnnualRate         float64 `json:"annual_rate"`
}

// MortgageQuoteResponseDTO - результат расчета. Числа дублируются
// отформатированными строками с разделением разрядов.
type MortgageQuoteResponseDTO struct {
	LoanAmount     int64 `json:"loan_amount"`
	MonthlyPayment int64 `json:"monthly_payment"`
	TotalPayment   int64 `json:"total_payment"`
	Overpayment    int64 `json:"overpayment"`

	Formatted MortgageQuoteFormattedDTO `json:"formatted"`
}

type MortgageQuoteFormattedDTO struct {
	LoanAmount     string `json:"loan_amount"`
	MonthlyPayment string `json:"monthly_payment"`
	TotalPayment   string `json:"total_payment"`
	Overpayment    string `json:"overpayment"`
}

// MortgageLeadRequestDTO - заявка на ипотечную консультацию:
// контакты плюс параметры расчета.
type MortgageLeadRequestDTO struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ProjectID string `json:"project_id"`

	MortgageQuoteRequestDTO
}

// CatalogOptionsDTO - словари значений для форм подбора.
type CatalogOptionsDTO struct {
	Districts      []string `json:"districts"`
	HousingTypes   []string `json:"housing_types"`
	HousingClasses []string `json:"housing_classes"`
	PaymentTypes   []string `json:"payment_types"`
	FinishTypes    []string `json:"finish_types"`
}

func toProjectCardDTO(p domain.Project) ProjectCardDTO {
	price := p.Price
	if price == "" {
		price = p.PriceFrom
	}

	housingClass := p.HousingClass
	if housingClass == "" {
		housingClass = domain.HousingClassForPrice(price)
	}

	return ProjectCardDTO{
		ID:           p.ID,
		Name:         p.Name,
		District:     p.District,
		Description:  p.Description,
		Price:        p.Price,
		PriceFrom:    p.PriceFrom,
		Status:       p.Status,
		Discount:     p.Discount,
		HousingClass: housingClass,
		Images:       p.Images,
		Features:     p.Features,
		Rooms:        p.Rooms,
		RoomsLabel:   domain.FormatRoomsLabel(p.Rooms),
	}
}

func toProjectDetailDTO(p domain.Project) ProjectDetailDTO {
	dto := ProjectDetailDTO{
		ProjectCardDTO: toProjectCardDTO(p),

		FullDescription: p.FullDescription,
		Completion:      p.Completion,
		Floors:          p.Floors,
		Apartments:      p.Apartments,
		Area:            p.Area,
		Parking:         p.Parking,
		PaymentTypes:    p.PaymentTypes,
		FinishTypes:     p.FinishTypes,
	}

	if min, max, ok := domain.ParseAreaRange(p.Area); ok {
		dto.AreaMin = min
		dto.AreaMax = max
	}

	return dto
}

func toFeedSnapshotDTO(snap domain.FeedSnapshot) FeedSnapshotDTO {
	items := make([]ProjectCardDTO, len(snap.Items))
	for i, p := range snap.Items {
		items[i] = toProjectCardDTO(p)
	}
	visible := make([]ProjectCardDTO, len(snap.Visible))
	for i, p := range snap.Visible {
		visible[i] = toProjectCardDTO(p)
	}

	dto := FeedSnapshotDTO{
		State:   string(snap.State),
		HasMore: snap.HasMore,
		Items:   items,
		Visible: visible,
	}
	if snap.Err != nil {
		dto.Error = &FeedErrorDTO{
			Message:   snap.Err.Error(),
			Retryable: domain.IsRetryable(snap.Err),
		}
	}
	return dto
}

func toMortgageQuoteResponseDTO(q domain.MortgageQuote) MortgageQuoteResponseDTO {
	return MortgageQuoteResponseDTO{
		LoanAmount:     q.LoanAmount,
		MonthlyPayment: q.MonthlyPayment,
		TotalPayment:   q.TotalPayment,
		Overpayment:    q.Overpayment,
		Formatted: MortgageQuoteFormattedDTO{
			LoanAmount:     domain.FormatNumber(q.LoanAmount),
			MonthlyPayment: domain.FormatNumber(q.MonthlyPayment),
			TotalPayment:   domain.FormatNumber(q.TotalPayment),
			Overpayment:    domain.FormatNumber(q.Overpayment),
		},
	}
}

// criteriaFromQuery собирает критерии фильтрации из query-параметров.
// Серверные и клиентские поля приходят одним набором, разделение
// происходит уже внутри ленты.
func criteriaFromQuery(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	return domain.FilterCriteria{
		District:     q.Get("district"),
		Status:       q.Get("status"),
		HousingClass: q.Get("housing_class"),
		AreaMin:      q.Get("areaMin"),
		AreaMax:      q.Get("areaMax"),
		PriceMin:     q.Get("priceMin"),
		PriceMax:     q.Get("priceMax"),

		HousingType: q.Get("housing_type"),
		PaymentType: q.Get("payment_type"),
		FinishType:  q.Get("finish_type"),
	}
}
