package domain

import (
	"errors"
	"fmt"
)

// Таксономия ошибок клиента backend API.
var (
	// ErrProjectNotFound - 404 при запросе одиночного ресурса.
	// 404 на списочном эндпоинте ошибкой не считается (пустой результат).
	ErrProjectNotFound = errors.New("project not found")

	// ErrConnection - транспортная ошибка (DNS, отказ соединения, offline).
	ErrConnection = errors.New("backend connection failed")

	// ErrTimeout - превышен клиентский дедлайн запроса.
	ErrTimeout = errors.New("backend request timed out")
)

// ServerError - ответ backend со статусом 5xx.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend server error: status %d", e.StatusCode)
}

// ValidationError - отклоненная отправка формы (4xx).
// Message содержит текст от сервера, если он был в теле ответа.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsRetryable сообщает, имеет ли смысл предлагать пользователю повтор.
// Повтор предлагается только для транзиентных ошибок.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrTimeout)
}
