package usecase

import (
	"catalog-frontend-service/internal/constants"
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"catalog-frontend-service/internal/core/port/usecases_port"
	"context"
	"fmt"
)

// RequestMortgageLeadUseCase - второй шаг калькулятора: явная отправка
// заявки на ипотеку. Сам расчет остается чистой функцией и выполняется
// отдельно; здесь только формируется и отправляется заявка.
type RequestMortgageLeadUseCase struct {
	calculate      usecases_port.CalculateMortgageUseCase
	submitCallback usecases_port.SubmitCallbackUseCase
}

func NewRequestMortgageLeadUseCase(calculate usecases_port.CalculateMortgageUseCase, submitCallback usecases_port.SubmitCallbackUseCase) *RequestMortgageLeadUseCase {
	return &RequestMortgageLeadUseCase{
		calculate:      calculate,
		submitCallback: submitCallback,
	}
}

func (uc *RequestMortgageLeadUseCase) Execute(ctx context.Context, name, phone, projectID string, terms domain.MortgageTerms) (*domain.CallbackReceipt, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "RequestMortgageLead"})

	quote := uc.calculate.Execute(terms)

	notes := fmt.Sprintf(
		"Расчет ипотеки: стоимость %s ₽, первоначальный взнос %s ₽, срок %d лет, ставка %.1f%%. Ежемесячный платеж %s ₽.",
		domain.FormatNumber(terms.PropertyPrice),
		domain.FormatNumber(terms.DownPayment),
		terms.TermYears,
		terms.AnnualRate,
		domain.FormatNumber(quote.MonthlyPayment),
	)

	lead := domain.CallbackLead{
		Name:      name,
		Phone:     phone,
		Reason:    constants.MortgageLeadReason,
		ProjectID: projectID,
		Notes:     notes,
	}

	logger.Info("Submitting mortgage lead", port.Fields{
		"term_years":   terms.TermYears,
		"monthly_rate": terms.AnnualRate,
	})

	return uc.submitCallback.Execute(ctx, lead)
}
