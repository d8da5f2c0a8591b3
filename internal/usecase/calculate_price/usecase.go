package calculate_price

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MatchingService/internal/service/pricing"
)

// UseCase use case расчета стоимости уборки
type UseCase struct {
	pricer Pricer
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricer Pricer, logger Logger) *UseCase {
	return &UseCase{
		pricer: pricer,
		logger: logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Params == nil {
		return nil, fmt.Errorf("%w: request is required", pricing.ErrInvalidInput)
	}

	uc.logger.Info("CalculatePrice: homeSize=%s, timeSlot=%s, addons=%d",
		req.Params.HomeSize, req.Params.TimeSlot, len(req.Params.Addons))

	result, err := uc.pricer.CalculatePrice(req.Params, req.Config)
	if err != nil {
		uc.logger.Warn("CalculatePrice: calculation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CalculatePrice: total=%.2f (base=%.2f, addons=%.2f, adjustment=%.2f)",
		result.TotalPrice, result.BasePrice, result.AddonPrice, result.TimeSlotAdjustment)

	return &Response{Result: result}, nil
}
