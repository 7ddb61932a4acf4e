package usecase

import (
	"catalog-frontend-service/internal/contextkeys"
	"catalog-frontend-service/internal/core/domain"
	"catalog-frontend-service/internal/core/port"
	"context"
	"strings"
	"unicode/utf8"
)

// SubmitCallbackUseCase валидирует заявку на обратный звонок и
// отправляет ее в backend через каталожный порт.
type SubmitCallbackUseCase struct {
	catalog port.ProjectCatalogPort
}

func NewSubmitCallbackUseCase(catalog port.ProjectCatalogPort) *SubmitCallbackUseCase {
	return &SubmitCallbackUseCase{catalog: catalog}
}

// Execute проверяет обязательные поля до какого-либо сетевого вызова:
// имя после trim не короче двух символов, телефон содержит 10-15 цифр,
// причина обращения обязательна. Телефон нормализуется к каноничному
// отображаемому формату перед отправкой.
func (uc *SubmitCallbackUseCase) Execute(ctx context.Context, lead domain.CallbackLead) (*domain.CallbackReceipt, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "SubmitCallback"})

	lead.Name = strings.TrimSpace(lead.Name)
	lead.Phone = strings.TrimSpace(lead.Phone)

	if lead.Name == "" {
		return nil, &domain.ValidationError{Message: "Введите ваше имя"}
	}
	if utf8.RuneCountInString(lead.Name) < 2 {
		return nil, &domain.ValidationError{Message: "Имя должно содержать минимум 2 символа"}
	}
	if lead.Phone == "" {
		return nil, &domain.ValidationError{Message: "Введите номер телефона"}
	}
	if !domain.ValidPhone(lead.Phone) {
		return nil, &domain.ValidationError{Message: "Введите корректный номер телефона"}
	}
	if lead.Reason == "" {
		return nil, &domain.ValidationError{Message: "Выберите причину обращения"}
	}

	lead.Phone = domain.FormatPhone(lead.Phone)

	logger.Info("Submitting callback lead", port.Fields{
		"reason":     lead.Reason,
		"project_id": lead.ProjectID,
	})

	receipt, err := uc.catalog.SubmitCallback(ctx, lead)
	if err != nil {
		logger.Error("Callback submission failed", err, nil)
		return nil, err
	}

	logger.Info("Callback lead accepted", port.Fields{"receipt_id": receipt.ID})
	return receipt, nil
}
