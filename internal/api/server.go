package api

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/api/middleware"
	"github.com/rxtech-lab/chain-directory/internal/cache"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/metrics"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

type APIServer struct {
	app            *fiber.App
	cfg            *config.Config
	logger         *zap.Logger
	chainService   services.ChainService
	safeAppService services.SafeAppService
	safeAppsCache  cache.Cache
	port           int
}

func NewAPIServer(
	cfg *config.Config,
	logger *zap.Logger,
	chainService services.ChainService,
	safeAppService services.SafeAppService,
	safeAppsCache cache.Cache,
) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(metrics.Middleware())

	server := &APIServer{
		app:            app,
		cfg:            cfg,
		logger:         logger,
		chainService:   chainService,
		safeAppService: safeAppService,
		safeAppsCache:  safeAppsCache,
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	s.app.Get("/chains", s.handleListChains)

	// The short-name route must be registered before the id route so the
	// literal "short-name" segment is not captured as a chain id.
	s.app.Get("/chains/short-name/:shortName", s.handleChainByShortName)
	s.app.Get("/chains/:chainID", s.handleChainByID)

	s.app.Get("/safe-apps", s.handleListSafeApps)

	// Operational endpoints
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}

// Start starts the server. A nil port picks a random available one; the
// chosen port is returned either way.
func (s *APIServer) Start(port *int) (int, error) {
	listenPort := 0
	if port != nil {
		listenPort = *port
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", listenPort))
	if err != nil {
		return 0, fmt.Errorf("failed to listen on port %d: %w", listenPort, err)
	}

	// Read back the assigned port before handing the listener to Fiber.
	s.port = listener.Addr().(*net.TCPAddr).Port

	go func() {
		if err := s.app.Listener(listener); err != nil {
			s.logger.Error("API server stopped", zap.Error(err))
		}
	}()

	return s.port, nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// GetFiberApp exposes the underlying Fiber app for adaptor based hosting.
func (s *APIServer) GetFiberApp() *fiber.App {
	return s.app
}

// Test dispatches a request against the server's router without opening a
// socket, for use in handler tests.
func (s *APIServer) Test(req *http.Request) (*http.Response, error) {
	return s.app.Test(req, -1)
}
