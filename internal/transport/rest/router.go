package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/shopfront/internal/category"
	"github.com/frahmantamala/shopfront/internal/shop"
	"github.com/frahmantamala/shopfront/internal/transport/middleware"
	"github.com/frahmantamala/shopfront/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
)

type Routes struct {
	Health         *HealthHandler
	Shops          *shop.Handler
	Categories     *category.Handler
	AllowedOrigins []string
}

func RegisterAllRoutes(router *chi.Mux, routes Routes, logger *slog.Logger) {
	// Apply global middleware
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get(swagger.SpecPath, swagger.SpecHandler)
	router.Handle("/swagger/*", swagger.Handler())

	// Server-rendered pages
	if routes.Shops != nil {
		router.Get("/", routes.Shops.ListPage)
		router.Get("/shops/{id}", routes.Shops.SelectShop)
		router.Post("/shops/{id}/categories", routes.Shops.AddCategory)
		router.Get("/add-shop", routes.Shops.AddShopPage)
		router.Post("/add-shop", routes.Shops.SubmitAddShop)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(corsHandler(routes.AllowedOrigins).Handler)

		if routes.Health != nil {
			r.Get("/health", routes.Health.healthCheckHandler)
			r.Get("/ping", routes.Health.pingHandler)
		}

		r.Route("/shops", func(sr chi.Router) {
			if routes.Shops != nil {
				sr.Get("/", routes.Shops.GetShops)    // GET /shops
				sr.Post("/", routes.Shops.CreateShop) // POST /shops
			}
			if routes.Categories != nil {
				sr.Get("/{id}/categories", routes.Categories.GetShopCategories)   // GET /shops/:id/categories
				sr.Post("/{id}/categories", routes.Categories.CreateShopCategory) // POST /shops/:id/categories
			}
		})
	})
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	})
}
