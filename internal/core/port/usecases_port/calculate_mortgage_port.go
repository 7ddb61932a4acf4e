package usecases_port

import "catalog-frontend-service/internal/core/domain"

type CalculateMortgageUseCase interface {
	// Execute - чистый расчет, без сети и побочных эффектов.
	Execute(terms domain.MortgageTerms) domain.MortgageQuote
}
