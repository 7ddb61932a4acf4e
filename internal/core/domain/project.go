package domain

// Project - жилой комплекс/проект застройки, как его отдает backend API.
// Поля Images и Features после нормализации на границе API всегда являются
// срезами строк (возможно пустыми), никогда сырой JSON-строкой.
type Project struct {
	ID              string
	Name            string
	District        string
	Description     string
	FullDescription string

	// Price - цена за м², PriceFrom - цена "от". Backend отдает их как
	// строки с валютой ("250 000 ₽"), храним как есть для отображения.
	Price     string
	PriceFrom string

	Completion string
	Floors     int
	Apartments int
	Area       string
	Parking    string

	Status       string
	Discount     string
	HousingClass string

	Images   []string
	Features []string

	// Rooms - доступные типы квартир ("Студия", "1к", "2к", ...).
	Rooms []string

	// PaymentTypes и FinishTypes - принимаемые виды оплаты и отделки.
	PaymentTypes []string
	FinishTypes  []string
}
