package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/core/domain"
	"math"
)

// CalculateMortgageUseCase - чистый расчет аннуитетного платежа.
// Не зависит от сети и состояния каталога.
type CalculateMortgageUseCase struct{}

func NewCalculateMortgageUseCase() *CalculateMortgageUseCase {
	return &CalculateMortgageUseCase{}
}

// Execute считает котировку по стандартной формуле аннуитета:
//
//	monthlyPayment = loan * r * (1+r)^n / ((1+r)^n - 1)
//
// где r - месячная ставка, n - срок в месяцах. Промежуточная математика
// остается в float64, округление до рубля выполняется один раз на выходе.
// Переплата считается от уже округленной общей суммы, чтобы равенство
// overpayment = totalPayment - loanAmount держалось точно.
func (uc *CalculateMortgageUseCase) Execute(terms domain.MortgageTerms) domain.MortgageQuote {
	loanAmount := terms.PropertyPrice - terms.DownPayment
	if loanAmount < 0 {
		loanAmount = 0
	}

	monthlyRate := terms.AnnualRate / 100 / 12
	months := terms.TermYears * 12

	if loanAmount <= 0 || months <= 0 || monthlyRate <= 0 {
		return domain.MortgageQuote{}
	}

	growth := math.Pow(1+monthlyRate, float64(months))
	monthlyPayment := float64(loanAmount) * monthlyRate * growth / (growth - 1)
	totalPayment := monthlyPayment * float64(months)

	roundedTotal := int64(math.Round(totalPayment))

	return domain.MortgageQuote{
		LoanAmount:     clampAmount(loanAmount),
		MonthlyPayment: clampAmount(int64(math.Round(monthlyPayment))),
		TotalPayment:   clampAmount(roundedTotal),
		Overpayment:    clampAmount(roundedTotal - loanAmount),
	}
}

// clampAmount ограничивает величину потолком отображения.
// Каждое поле ограничивается независимо.
func clampAmount(v int64) int64 {
	if v > constants.MaxDisplayAmount {
		return constants.MaxDisplayAmount
	}
	return v
}
