package calculate_price

import (
	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// Pricer интерфейс движка расчета стоимости
type Pricer interface {
	// CalculatePrice считает детализированную стоимость уборки
	// config == nil означает конфигурацию цен по умолчанию
	CalculatePrice(params *domain.PricingParams, config *domain.PricingConfig) (*domain.PricingResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
