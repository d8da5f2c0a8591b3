package calculate_price

import (
	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// Request модель запроса на расчет стоимости
type Request struct {
	Params *domain.PricingParams
	Config *domain.PricingConfig // nil — конфигурация по умолчанию
}

// Response модель ответа с детализированной стоимостью
type Response struct {
	Result *domain.PricingResult
}
