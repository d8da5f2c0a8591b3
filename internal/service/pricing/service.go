package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service детерминированный калькулятор стоимости заказа
// Чистое вычисление: результат не хранится и пересчитывается на каждый вызов
type Service struct {
	defaultConfig *domain.PricingConfig
	logger        Logger
}

// NewService создает калькулятор с конфигурацией цен по умолчанию
func NewService(logger Logger) *Service {
	return &Service{
		defaultConfig: domain.DefaultPricingConfig(),
		logger:        logger,
	}
}

// CalculatePrice вычисляет детализированную стоимость заказа
// config позволяет переопределить цены на один вызов; nil - цены по умолчанию
// Инвариант результата: TotalPrice == BasePrice + AddonPrice + TimeSlotAdjustment
func (s *Service) CalculatePrice(params *domain.PricingParams, config *domain.PricingConfig) (*domain.PricingResult, error) {
	// 1. Валидация до вычислений
	if err := validateParams(params); err != nil {
		s.logger.Warn("Pricing: validation failed: %v", err)
		return nil, err
	}

	cfg := config
	if cfg == nil {
		cfg = s.defaultConfig
	}

	// Отсутствующая запись конфигурации - ошибка входа, не тихий дефолт
	basePrice, ok := cfg.BasePricing[params.HomeSize]
	if !ok {
		return nil, fmt.Errorf("%w: no base price configured for home size %q", ErrInvalidInput, params.HomeSize)
	}

	multiplier, ok := cfg.TimeSlotMultipliers[params.TimeSlot]
	if !ok {
		return nil, fmt.Errorf("%w: no multiplier configured for time slot %q", ErrInvalidInput, params.TimeSlot)
	}

	// 2. Расчет
	result, err := calculate(params, basePrice, multiplier)
	if err != nil {
		// Вычислительные сбои оборачиваются типизированной ошибкой на границе
		s.logger.Error("Pricing: calculation failed for homeSize=%s, timeSlot=%s: %v",
			params.HomeSize, params.TimeSlot, err)
		return nil, fmt.Errorf("%w: %v", ErrCalculation, err)
	}

	s.logger.Info("Pricing: homeSize=%s, timeSlot=%s, addons=%d, total=%.2f",
		params.HomeSize, params.TimeSlot, len(params.Addons), result.TotalPrice)

	return result, nil
}

// calculate собирает итог и детализацию
// Надбавка за время считается от базовой цены, не от суммы с опциями
func calculate(params *domain.PricingParams, basePrice, multiplier float64) (*domain.PricingResult, error) {
	addonLines := make([]domain.AddonLine, 0, len(params.Addons))
	addonPrice := 0.0
	for _, addon := range params.Addons {
		addonPrice += addon.Price
		addonLines = append(addonLines, domain.AddonLine{
			ID:    addon.ID,
			Name:  addon.Name,
			Price: addon.Price,
		})
	}

	adjustment := basePrice * multiplier
	total := basePrice + addonPrice + adjustment

	return &domain.PricingResult{
		BasePrice:          basePrice,
		AddonPrice:         addonPrice,
		TimeSlotAdjustment: adjustment,
		TotalPrice:         total,
		Breakdown: domain.PriceBreakdown{
			HomeSize:  params.HomeSize,
			BasePrice: basePrice,
			Addons:    addonLines,
			TimeSlot: domain.TimeSlotDetail{
				Slot:       params.TimeSlot,
				Multiplier: multiplier,
				Adjustment: adjustment,
			},
		},
	}, nil
}

// validateParams валидирует параметры расчета
func validateParams(params *domain.PricingParams) error {
	if params == nil {
		return fmt.Errorf("%w: params are required", ErrInvalidInput)
	}

	if !params.HomeSize.IsValid() {
		return fmt.Errorf("%w: unknown home size %q", ErrInvalidInput, params.HomeSize)
	}

	if !params.TimeSlot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, params.TimeSlot)
	}

	for _, addon := range params.Addons {
		if addon.Price < 0 {
			return fmt.Errorf("%w: addon %q has negative price", ErrInvalidInput, addon.ID)
		}
	}

	return nil
}
