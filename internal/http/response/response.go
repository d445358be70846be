// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/giftoutfit/internal/backend"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"

	// MsgRequestFailed — сообщение о временном сбое бэкенда, запрос можно повторить.
	MsgRequestFailed = "request failed, please try again"
	// MsgDecodeFailed — тело запроса не является корректным JSON.
	MsgDecodeFailed = "failed to decode request"
	// MsgUnauthorized — запрос без корректных данных запуска.
	MsgUnauthorized = "unauthorized"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// WriteError отправляет ошибку с HTTP-статусом code.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, Error(msg))
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}

// WriteValidationError отправляет ошибки валидации со статусом 422.
// Ошибки другого типа (например, InvalidValidationError) отдаются как 400.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid request")
		return
	}
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, ValidationError(verrs))
}

// WriteBackendError отправляет ошибку обращения к бэкенду: 401 без данных
// запуска, 404 для отсутствующего ресурса, иначе 502 с предложением повторить.
func WriteBackendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		WriteError(w, r, http.StatusUnauthorized, MsgUnauthorized)
	case errors.Is(err, backend.ErrNotFound):
		WriteError(w, r, http.StatusNotFound, "not found")
	default:
		WriteError(w, r, http.StatusBadGateway, MsgRequestFailed)
	}
}
