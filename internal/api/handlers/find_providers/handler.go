package find_providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MatchingService/internal/api/handlers"
	"github.com/m04kA/SMC-MatchingService/internal/service/matching"
	"github.com/m04kA/SMC-MatchingService/pkg/metrics"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные параметры подбора"
	msgNoProvidersAvailable = "подходящие исполнители не найдены"
)

type Handler struct {
	useCase FindProvidersUseCase
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает handler подбора исполнителей
// metrics может быть nil, если сбор метрик выключен
func NewHandler(useCase FindProvidersUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /providers/search - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidInput):
			h.logger.Warn("POST /providers/search - Invalid input: service=%s, error=%v", req.ServiceID, err)
			h.observe("invalid_input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, matching.ErrNoProvidersAvailable):
			h.logger.Info("POST /providers/search - No providers available: service=%s", req.ServiceID)
			h.observe("no_providers")
			handlers.RespondNotFound(w, msgNoProvidersAvailable)

		default:
			h.logger.Error("POST /providers/search - Matching failed: service=%s, error=%v", req.ServiceID, err)
			h.observe("error")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.observe("ok")
	if h.metrics != nil {
		h.metrics.MatchCandidates.WithLabelValues("candidates").Observe(float64(result.Candidates))
		h.metrics.MatchCandidates.WithLabelValues("ranked").Observe(float64(len(result.Matches)))
	}

	h.logger.Info("POST /providers/search - Matched %d providers for service=%s", len(result.Matches), req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) observe(status string) {
	if h.metrics != nil {
		h.metrics.MatchRequestsTotal.WithLabelValues("search", status).Inc()
	}
}
