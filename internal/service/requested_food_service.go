package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// RequestedFoodService provides operations on a user's food claims
type RequestedFoodService interface {
	// ListMine returns the claims made by email, which must be caller's.
	ListMine(ctx context.Context, caller auth.Identity, email string) ([]domain.RequestedFood, error)

	// Create records a claim on behalf of caller, who must be the requester.
	Create(ctx context.Context, caller auth.Identity, rf domain.RequestedFood) (*store.InsertResult, error)
}

type requestedFoodServiceImpl struct {
	requests store.RequestedFoodStore
	logger   *slog.Logger
}

// NewRequestedFoodService creates a new RequestedFoodService
func NewRequestedFoodService(requests store.RequestedFoodStore, logger *slog.Logger) (RequestedFoodService, error) {
	if requests == nil {
		return nil, domain.NewValidationError("requests", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &requestedFoodServiceImpl{
		requests: requests,
		logger:   logger.With(slog.String("component", "requested_food_service")),
	}, nil
}

// ListMine implements RequestedFoodService.ListMine
func (s *requestedFoodServiceImpl) ListMine(
	ctx context.Context,
	caller auth.Identity,
	email string,
) ([]domain.RequestedFood, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if email != caller.Email {
		log.Warn("requester does not match caller", slog.String("operation", "list_requested_foods"))
		return nil, ErrForbidden
	}

	out, err := s.requests.FindByRequester(ctx, email)
	if err != nil {
		log.Error("failed to list requested foods", slog.String("error", err.Error()))
		return nil, NewRequestedFoodServiceError("list_mine", "failed to query requested foods", err)
	}
	return out, nil
}

// Create implements RequestedFoodService.Create
func (s *requestedFoodServiceImpl) Create(
	ctx context.Context,
	caller auth.Identity,
	rf domain.RequestedFood,
) (*store.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if rf.RequesterEmail() != caller.Email {
		log.Warn("requester does not match caller", slog.String("operation", "create_requested_food"))
		return nil, ErrForbidden
	}

	res, err := s.requests.Insert(ctx, rf.Normalize())
	if err != nil {
		log.Error("failed to insert requested food", slog.String("error", err.Error()))
		return nil, NewRequestedFoodServiceError("create", "failed to save requested food", err)
	}

	log.Info("requested food created", slog.String("requested_food_id", res.InsertedID))
	return res, nil
}
