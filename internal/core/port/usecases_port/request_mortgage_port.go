package usecases_port

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
)

type RequestMortgageLeadUseCase interface {
	// Execute отправляет заявку на ипотечную консультацию: расчет
	// прикладывается к заявке текстом, причина фиксированная.
	Execute(ctx context.Context, name, phone, projectID string, terms domain.MortgageTerms) (*domain.CallbackReceipt, error)
}
