// Package web wires the fiber application: middleware, routes and the
// central error handler shaping every response into the JSON envelope.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/auth"
	"github.com/civilapp/user-management/internal/config"
	fiberlogger "github.com/civilapp/user-management/internal/logger/adapter/fiber"
	departmenthandler "github.com/civilapp/user-management/internal/web/handler/department"
	permissionhandler "github.com/civilapp/user-management/internal/web/handler/permission"
	"github.com/civilapp/user-management/internal/web/response"
)

// HealthPath is the path of the liveness endpoint.
const HealthPath = "/healthz"

// Service represents the web service.
type Service struct {
	App         *fiber.App
	cfg         *config.Config
	alive       atomic.Bool
	db          *gorm.DB
	authService *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	// shut down gracefully on SIGINT/SIGTERM
	go s.WaitShutdown()

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and shuts the service down
// gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: report unhealthy first so the
	// LB removes this pod from active targets before the listener stops.
	log.Info().Msgf(
		"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app; all errors escaping handlers land in ErrorHandler
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "user-management",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   ErrorHandler,
		},
	)

	// panics become errors and surface as 500 envelopes
	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:    cfg.Log,
		HealthURI: HealthPath,
	}))

	// Initialize auth service
	authService := auth.NewService(db)

	// init web service
	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}

	// init handlers (they register their own routes)
	departmenthandler.Handler.Init(app, cfg, db)
	permissionhandler.Handler.Init(app, cfg, db, authService)

	app.Get(HealthPath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return response.Error(c, "shutting down", nil, fiber.StatusServiceUnavailable)
		}

		return response.Success(c, "OK", nil)
	})

	return service
}
