package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/service"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// FoodHandler handles food-related HTTP requests
type FoodHandler struct {
	foods  service.FoodService
	logger *slog.Logger
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(foods service.FoodService, logger *slog.Logger) *FoodHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FoodHandler")
	}

	return &FoodHandler{
		foods:  foods,
		logger: logger.With(slog.String("component", "food_handler")),
	}
}

// ListFoods handles GET /foods requests
// It is public. sortBy=date|quantity lists today's and later foods in that
// order; anything else lists the foods of the email parameter.
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	params := service.ListFoodsParams{
		SortBy: query.Get("sortBy"),
		Email:  optionalQuery(r, "email"),
	}

	// limit only applies to the sorted listings; the email listing ignores it.
	if params.SortBy == service.SortByDate || params.SortBy == service.SortByQuantity {
		limit, err := parseLimit(query.Get("limit"))
		if err != nil {
			log.Debug("invalid limit", slog.String("limit", query.Get("limit")))
			HandleAPIError(w, r, err)
			return
		}
		params.Limit = limit
	}

	foods, err := h.foods.ListFoods(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, foods)
}

// GetFood handles GET /foods/{id} requests
// A missing food is answered with 200 and a null body.
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	food, err := h.foods.GetFood(r.Context(), pathID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, food)
}

// CreateFood handles POST /addFood requests
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var food domain.Food
	if !decodeBody(w, r, &food) {
		return
	}

	res, err := h.foods.CreateFood(r.Context(), caller, food)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// UpdateFood handles PUT /foods/{id} requests
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	var patch domain.Food
	if !decodeBody(w, r, &patch) {
		return
	}

	res, err := h.foods.UpdateFood(r.Context(), caller, pathID(r), patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// DeleteFood handles DELETE /foods/{id} requests
// Only the caller's own food is removed; any other id is acknowledged with
// a deletedCount of 0.
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request, caller auth.Identity) {
	res, err := h.foods.DeleteFood(r.Context(), caller, pathID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
