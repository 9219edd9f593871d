package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/category"
	"github.com/frahmantamala/shopfront/internal/core/events"
	"github.com/frahmantamala/shopfront/internal/shop"
	"github.com/frahmantamala/shopfront/internal/shopapi"
	"github.com/frahmantamala/shopfront/internal/transport"
	"github.com/frahmantamala/shopfront/internal/transport/rest"
	"github.com/frahmantamala/shopfront/internal/transport/swagger"
	"github.com/frahmantamala/shopfront/internal/web"
	"github.com/frahmantamala/shopfront/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server serving the shop pages and the JSON API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	Client          *shopapi.Client
	ShopService     *shop.Service
	CategoryService *category.Service
	Renderer        *web.Renderer
	Router          *chi.Mux
	Logger          *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if _, err := swagger.Load(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid OpenAPI document: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "shop_api", deps.Client.BaseURL())

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	baseHandler := transport.NewBaseHandler(deps.Logger)

	categoryHandler := category.NewHandler(baseHandler, deps.CategoryService)
	shopHandler := shop.NewHandler(baseHandler, deps.ShopService, deps.CategoryService, deps.Renderer)
	healthHandler := rest.NewHealthHandler(deps.Client, deps.Client.BaseURL())

	rest.RegisterAllRoutes(deps.Router, rest.Routes{
		Health:         healthHandler,
		Shops:          shopHandler,
		Categories:     categoryHandler,
		AllowedOrigins: deps.Config.Server.Origins(),
	}, deps.Logger)
}

func initializeDependencies(config *internal.Config) (*Dependencies, error) {
	lg := logger.LoggerWrapper()

	client, shopService, categoryService := initServices(config, lg, asyncPublisher)

	renderer, err := web.NewRenderer(lg)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Dependencies{
		Config:          config,
		Client:          client,
		ShopService:     shopService,
		CategoryService: categoryService,
		Renderer:        renderer,
		Router:          chi.NewRouter(),
		Logger:          lg,
	}, nil
}

// initServices wires the shop API client, the event bus and both services.
// publisher decides how the services reach the bus.
func initServices(config *internal.Config, lg *slog.Logger, publisher func(*events.EventBus) events.Publisher) (*shopapi.Client, *shop.Service, *category.Service) {
	client := shopapi.NewClient(shopapi.Config{
		BaseURL: config.ShopAPI.BaseURL,
		Timeout: config.ShopAPI.Timeout,
	}, lg)

	eventBus := events.NewEventBus(lg)
	eventBus.Subscribe(events.EventTypeShopCreated, events.LogHandler(lg))
	eventBus.Subscribe(events.EventTypeCategoryCreated, events.LogHandler(lg))

	shopService := shop.NewService(client, publisher(eventBus), lg)
	categoryService := category.NewService(client, publisher(eventBus), lg)

	return client, shopService, categoryService
}

// asyncPublisher hands events to background handlers; the server outlives them.
func asyncPublisher(bus *events.EventBus) events.Publisher {
	return bus
}

// syncPublisher runs handlers before Publish returns, so a CLI run does not
// exit ahead of them.
type syncPublisher struct {
	bus *events.EventBus
}

func (p syncPublisher) Publish(ctx context.Context, event events.Event) error {
	return p.bus.PublishSync(ctx, event)
}

func newSyncPublisher(bus *events.EventBus) events.Publisher {
	return syncPublisher{bus: bus}
}
