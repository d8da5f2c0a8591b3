package geosearch

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geosearch client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geosearch client: invalid response")

	// ErrRemote возвращается, когда сервис гео-поиска вернул ошибку в envelope
	ErrRemote = errors.New("geosearch client: remote error")
)
