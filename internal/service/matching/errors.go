package matching

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе или опциях подбора
	// Запрос можно исправить на стороне вызывающего и повторить
	ErrInvalidInput = errors.New("matching: invalid input")

	// ErrNoProvidersAvailable возвращается, когда корректный запрос не нашел
	// ни одного подходящего исполнителя. Это не ошибка запроса:
	// вызывающему стоит предложить расширить поиск
	ErrNoProvidersAvailable = errors.New("matching: no providers available")

	// ErrMatching возвращается при неожиданной внутренней ошибке подбора
	// (например, сбой источника данных). Исходная причина оборачивается
	ErrMatching = errors.New("matching: internal error")
)
