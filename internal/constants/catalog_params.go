package constants

import "time"

// Параметры ленты каталога и клиента backend API.
// Меняются только на этапе сборки/деплоя, не в рантайме.
const (
	// PageSize - размер страницы каталога. hasMore вычисляется
	// по равенству количества полученных элементов этому значению.
	PageSize = 5

	// RequestTimeout - жесткий дедлайн на один запрос к backend API.
	RequestTimeout = 30 * time.Second
)

// MaxDisplayAmount - потолок для денежных величин в расчете ипотеки,
// чтобы в UI не появлялись числа, похожие на переполнение.
const MaxDisplayAmount int64 = 500_000_000

// Значения по умолчанию для ипотечного калькулятора.
const (
	DefaultLoanTermYears = 20
	DefaultAnnualRate    = 8.5
)

// Метки классов жилья.
const (
	HousingClassPremium     = "Премиум"
	HousingClassComfortPlus = "Комфорт +"
	HousingClassComfort     = "Комфорт"
	HousingClassEconomy     = "Эконом"
)

// Словарь типов жилья (фильтр по количеству комнат).
const (
	HousingTypeStudio     = "Студия"
	HousingTypeOneRoom    = "1 спальня"
	HousingTypeTwoRooms   = "2 спальни"
	HousingTypeThreeRooms = "3 спальни"
	HousingTypeFourPlus   = "Более 4 спален"
)

// Причина обращения для заявок из ипотечного калькулятора.
const MortgageLeadReason = "ипотека"

// Словари для клиентских форм подбора. Отдаются наружу через
// GET /api/v1/catalog/options, чтобы клиенты их не хардкодили.
var (
	Districts = []string{
		"Ленинский район",
		"Кировский район",
		"Первомайский район",
		"Железнодорожный район",
		"Советский район",
		"Октябрьский район",
		"Ворошиловский район",
		"Пролетарский район",
		"Область и другие регионы",
	}

	PaymentTypes = []string{"ипотека", "рассрочка", "наличные"}

	FinishTypes = []string{"без отделки", "предчистовая", "чистовая", "с мебелью"}

	HousingTypes = []string{
		HousingTypeStudio,
		HousingTypeOneRoom,
		HousingTypeTwoRooms,
		HousingTypeThreeRooms,
		HousingTypeFourPlus,
	}

	HousingClasses = []string{
		HousingClassEconomy,
		HousingClassComfort,
		HousingClassComfortPlus,
		HousingClassPremium,
	}
)
