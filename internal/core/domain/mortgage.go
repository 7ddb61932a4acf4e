package domain

// MortgageTerms - входные параметры расчета ипотеки.
type MortgageTerms struct {
	PropertyPrice int64
	DownPayment   int64
	TermYears     int
	AnnualRate    float64
}

// MortgageQuote - результат расчета аннуитетного платежа.
// Не персистентен: пересчитывается на каждое изменение входных данных.
type MortgageQuote struct {
	LoanAmount     int64
	MonthlyPayment int64
	TotalPayment   int64
	Overpayment    int64
}
