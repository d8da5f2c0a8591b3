package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MatchingService/internal/api/handlers"
	"github.com/m04kA/SMC-MatchingService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета"
	msgCalculationFailed  = "не удалось рассчитать стоимость"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /pricing/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /pricing/quote - Invalid input: homeSize=%s, timeSlot=%s, error=%v",
				req.HomeSize, req.TimeSlot, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrCalculation), errors.Is(err, pricing.ErrUnsupportedFeature):
			h.logger.Error("POST /pricing/quote - Calculation failed: homeSize=%s, timeSlot=%s, error=%v",
				req.HomeSize, req.TimeSlot, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCalculationFailed)

		default:
			h.logger.Error("POST /pricing/quote - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/quote - Quote calculated: homeSize=%s, timeSlot=%s, total=%.2f",
		req.HomeSize, req.TimeSlot, result.Result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
