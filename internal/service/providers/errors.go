package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
