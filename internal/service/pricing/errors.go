package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах расчета
	// или отсутствующей записи в конфигурации цен
	ErrInvalidInput = errors.New("pricing: invalid input")

	// ErrCalculation возвращается при неожиданной ошибке вычисления
	// Наружу никогда не уходит нетипизированная ошибка
	ErrCalculation = errors.New("pricing: calculation error")

	// ErrUnsupportedFeature зарезервирована для еще не смоделированных
	// возможностей ценообразования
	ErrUnsupportedFeature = errors.New("pricing: unsupported feature")
)
