package upsert_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MatchingService/internal/api/handlers"
	providersService "github.com/m04kA/SMC-MatchingService/internal/service/providers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные исполнителя"
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

// Handle PUT /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	var req UpsertProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id} - Invalid request body: id=%s, error=%v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := req.ToDomainProvider(providerID)
	if err != nil {
		h.logger.Warn("PUT /providers/{id} - Failed to parse request: id=%s, error=%v", providerID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	saved, err := h.service.Upsert(r.Context(), provider)
	if err != nil {
		switch {
		case errors.Is(err, providersService.ErrInvalidInput):
			h.logger.Warn("PUT /providers/{id} - Invalid input: id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /providers/{id} - Failed to save provider: id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id} - Provider saved: id=%s, name=%s", saved.ID, saved.Name)
	handlers.RespondJSON(w, http.StatusOK, FromDomainProvider(saved))
}
