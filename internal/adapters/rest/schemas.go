package rest

import (
	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/callback_request.json
var callbackRequestSchemaRaw string

// callbackRequestSchema проверяет форму тела заявки до декодирования
// в DTO: типы полей, обязательность, отсутствие лишних ключей.
// Содержательная валидация (длина имени, формат телефона) остается
// на уровне use case.
var callbackRequestSchema = jsonschema.MustCompileString("callback_request.json", callbackRequestSchemaRaw)
