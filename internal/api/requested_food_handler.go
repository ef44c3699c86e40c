package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/service"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// RequestedFoodHandler handles requests on a user's food claims
type RequestedFoodHandler struct {
	requests service.RequestedFoodService
	logger   *slog.Logger
}

// NewRequestedFoodHandler creates a new RequestedFoodHandler
func NewRequestedFoodHandler(requests service.RequestedFoodService, logger *slog.Logger) *RequestedFoodHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RequestedFoodHandler")
	}

	return &RequestedFoodHandler{
		requests: requests,
		logger:   logger.With(slog.String("component", "requested_food_handler")),
	}
}

// ListMine handles GET /myRequestedFoods requests
func (h *RequestedFoodHandler) ListMine(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	out, err := h.requests.ListMine(r.Context(), caller, r.URL.Query().Get("email"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// Create handles POST /myRequestedFoods requests
func (h *RequestedFoodHandler) Create(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var rf domain.RequestedFood
	if !decodeBody(w, r, &rf) {
		return
	}

	res, err := h.requests.Create(r.Context(), caller, rf)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
