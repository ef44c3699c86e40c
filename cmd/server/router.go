package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/foodshare-api/internal/api"
	apiMiddleware "github.com/phrazzld/foodshare-api/internal/api/middleware"
)

// setupRouter creates and configures the application router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.Server.Origins()))

	foodHandler := api.NewFoodHandler(app.foodService, app.logger)
	requestedFoodHandler := api.NewRequestedFoodHandler(app.requestedFoodService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	// Public routes
	r.Get("/", api.Liveness)
	r.Get("/foods", foodHandler.ListFoods)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/foods/{id}", api.WithIdentity(foodHandler.GetFood))
		r.Put("/foods/{id}", api.WithIdentity(foodHandler.UpdateFood))
		r.Delete("/foods/{id}", api.WithIdentity(foodHandler.DeleteFood))
		r.Post("/addFood", api.WithIdentity(foodHandler.CreateFood))

		r.Get("/myRequestedFoods", api.WithIdentity(requestedFoodHandler.ListMine))
		r.Post("/myRequestedFoods", api.WithIdentity(requestedFoodHandler.Create))
	})

	return r
}
