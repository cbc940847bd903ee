package domain

import "errors"

// Закрытая таксономия ошибок API. Ошибки нижних слоев (БД, bcrypt, jwt)
// переводятся в один из этих видов ровно один раз — на границе репозитория
// или пайплайна. Сырой текст драйвера клиенту не уходит.

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInternal
	KindValidation
)

// HTTPStatus — фиксированный маппинг вида ошибки на статус-код.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindBadRequest, KindValidation:
		return 400
	case KindUnauthorized:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	default:
		return 500
	}
}

// AppError — единственный тип ошибки, который доходит до границы HTTP.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func BadRequest(msg string) *AppError   { return &AppError{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) *AppError { return &AppError{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *AppError    { return &AppError{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *AppError     { return &AppError{Kind: KindNotFound, Message: msg} }
func Internal(msg string) *AppError     { return &AppError{Kind: KindInternal, Message: msg} }
func Validation(msg string) *AppError   { return &AppError{Kind: KindValidation, Message: msg} }

// AsAppError приводит произвольную ошибку к AppError.
// Все незнакомое схлопывается в Internal с generic-сообщением.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal server error")
}
