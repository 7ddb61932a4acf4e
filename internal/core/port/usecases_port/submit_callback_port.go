package usecases_port

import (
	"catalog-frontend-service/internal/core/domain"
	"context"
)

type SubmitCallbackUseCase interface {
	// Execute валидирует заявку на стороне клиента (имя, телефон, причина)
	// и отправляет ее в backend. Ошибки валидации возвращаются как
	// *domain.ValidationError до какого-либо сетевого вызова.
	Execute(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error)
}
