package get_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MatchingService/internal/api/handlers"
	providersService "github.com/m04kA/SMC-MatchingService/internal/service/providers"
)

const (
	msgProviderNotFound = "исполнитель не найден"
	msgInvalidInput     = "некорректный идентификатор исполнителя"
)

type Handler struct {
	service ProvidersService
	logger  Logger
}

func NewHandler(service ProvidersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	provider, err := h.service.GetByID(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, providersService.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id} - Provider not found: id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, providersService.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id} - Invalid input: id=%s", providerID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /providers/{id} - Failed to fetch provider: id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainProvider(provider))
}
