package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// Recognized values of the sortBy listing parameter.
const (
	SortByDate     = "date"
	SortByQuantity = "quantity"
)

// ListFoodsParams holds the listing parameters of GET /foods.
type ListFoodsParams struct {
	// SortBy is "date", "quantity" or anything else for an unsorted listing.
	SortBy string

	// Email filters an unsorted listing. Nil means the parameter was absent.
	Email *string

	// Limit caps a sorted listing; 0 means unbounded.
	Limit int64
}

// FoodService provides food-related operations
type FoodService interface {
	// ListFoods returns the public food listing described by params.
	ListFoods(ctx context.Context, params ListFoodsParams) ([]domain.Food, error)

	// GetFood returns the identified food, or nil when it does not exist.
	GetFood(ctx context.Context, id string) (domain.Food, error)

	// CreateFood stores food on behalf of caller, who must be its owner.
	CreateFood(ctx context.Context, caller auth.Identity, food domain.Food) (*store.InsertResult, error)

	// UpdateFood sets the fields of patch on the identified food. The patch
	// must name caller as its owner.
	UpdateFood(ctx context.Context, caller auth.Identity, id string, patch domain.Food) (*store.UpdateResult, error)

	// DeleteFood removes the identified food if caller owns it.
	DeleteFood(ctx context.Context, caller auth.Identity, id string) (*store.DeleteResult, error)
}

// FoodServiceOption configures a FoodService.
type FoodServiceOption func(*foodServiceImpl)

// WithClock sets the time source used for the start-of-day boundary.
func WithClock(now func() time.Time) FoodServiceOption {
	return func(s *foodServiceImpl) {
		s.now = now
	}
}

// foodServiceImpl implements the FoodService interface
type foodServiceImpl struct {
	foods  store.FoodStore
	logger *slog.Logger
	now    func() time.Time
}

// NewFoodService creates a new FoodService
// It returns an error if the store is nil.
func NewFoodService(foods store.FoodStore, logger *slog.Logger, opts ...FoodServiceOption) (FoodService, error) {
	if foods == nil {
		return nil, domain.NewValidationError("foods", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &foodServiceImpl{
		foods:  foods,
		logger: logger.With(slog.String("component", "food_service")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ListFoods implements FoodService.ListFoods
func (s *foodServiceImpl) ListFoods(ctx context.Context, params ListFoodsParams) ([]domain.Food, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var q store.FoodQuery
	switch params.SortBy {
	case SortByDate, SortByQuantity:
		q.From = domain.StartOfDay(s.now())
		q.Limit = params.Limit
		q.Sort = store.SortDateAsc
		if params.SortBy == SortByQuantity {
			q.Sort = store.SortQuantityDesc
		}
	default:
		// No document has an email equal to an absent value.
		if params.Email == nil {
			log.Debug("unsorted listing without email filter")
			return []domain.Food{}, nil
		}
		q.Email = params.Email
	}

	foods, err := s.foods.Find(ctx, q)
	if err != nil {
		log.Error("failed to list foods",
			slog.String("error", err.Error()),
			slog.String("sort_by", params.SortBy))
		return nil, NewFoodServiceError("list_foods", "failed to query foods", err)
	}

	return foods, nil
}

// GetFood implements FoodService.GetFood
func (s *foodServiceImpl) GetFood(ctx context.Context, id string) (domain.Food, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		log.Debug("failed to retrieve food",
			slog.String("error", err.Error()),
			slog.String("food_id", id))
		return nil, NewFoodServiceError("get_food", "failed to retrieve food", err)
	}

	return food, nil
}

// CreateFood implements FoodService.CreateFood
func (s *foodServiceImpl) CreateFood(
	ctx context.Context,
	caller auth.Identity,
	food domain.Food,
) (*store.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if food.Email() != caller.Email {
		log.Warn("food owner does not match caller", slog.String("operation", "create_food"))
		return nil, ErrForbidden
	}

	normalized, err := food.Normalize()
	if err != nil {
		return nil, NewFoodServiceError("create_food", "invalid food", err)
	}

	res, err := s.foods.Insert(ctx, normalized)
	if err != nil {
		log.Error("failed to insert food", slog.String("error", err.Error()))
		return nil, NewFoodServiceError("create_food", "failed to save food", err)
	}

	log.Info("food created", slog.String("food_id", res.InsertedID))
	return res, nil
}

// UpdateFood implements FoodService.UpdateFood
func (s *foodServiceImpl) UpdateFood(
	ctx context.Context,
	caller auth.Identity,
	id string,
	patch domain.Food,
) (*store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.Email() != caller.Email {
		log.Warn("food owner does not match caller",
			slog.String("operation", "update_food"),
			slog.String("food_id", id))
		return nil, ErrForbidden
	}

	normalized, err := patch.Normalize()
	if err != nil {
		return nil, NewFoodServiceError("update_food", "invalid food", err)
	}

	res, err := s.foods.UpdateByID(ctx, id, normalized)
	if err != nil {
		log.Error("failed to update food",
			slog.String("error", err.Error()),
			slog.String("food_id", id))
		return nil, NewFoodServiceError("update_food", "failed to update food", err)
	}

	log.Debug("food updated",
		slog.String("food_id", id),
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("modified", res.ModifiedCount))
	return res, nil
}

// DeleteFood implements FoodService.DeleteFood
func (s *foodServiceImpl) DeleteFood(
	ctx context.Context,
	caller auth.Identity,
	id string,
) (*store.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.foods.DeleteOwned(ctx, id, caller.Email)
	if err != nil {
		log.Error("failed to delete food",
			slog.String("error", err.Error()),
			slog.String("food_id", id))
		return nil, NewFoodServiceError("delete_food", "failed to delete food", err)
	}

	log.Debug("food delete acknowledged",
		slog.String("food_id", id),
		slog.Int64("deleted", res.DeletedCount))
	return res, nil
}
