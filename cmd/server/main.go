// Package main is the entry point for the SkyBooker flight booking service.
//
//	@title						SkyBooker Booking API
//	@version					1.0.0
//	@description				A demo flight booking service: search flights, pick seats, and pay with a simulated card.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skybooker/flight-booking-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from the login endpoints, sent as "Bearer {token}".
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skybooker/flight-booking-service/docs"

	bookinghttp "github.com/skybooker/flight-booking-service/internal/adapter/http"
	"github.com/skybooker/flight-booking-service/internal/adapter/http/middleware"
	"github.com/skybooker/flight-booking-service/internal/adapter/provider/skyair"
	"github.com/skybooker/flight-booking-service/internal/config"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/token"
	"github.com/skybooker/flight-booking-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "skybooker",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := newSessionStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect session store")
	}
	defer store.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg, store, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// newSessionStore connects Redis when configured, otherwise falls back to
// the in-memory store. The in-memory store loses sessions on restart, which
// is acceptable for development.
func newSessionStore(cfg *config.Config, log *logger.Logger) (session.Store, error) {
	if cfg.Session.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}

	store, err := session.NewRedisStore(session.RedisConfig{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
		TTL:      cfg.Session.TTL,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("addr", cfg.Session.RedisAddr).Msg("Connected to Redis session store")
	return store, nil
}

// setupRoutes wires the use cases and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, store session.Store, log *logger.Logger) {
	clock := timeutil.NewRealClock()
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Separate sources: the provider and the booking flow lock their own.
	provider := skyair.NewAdapter(rand.New(rand.NewSource(time.Now().UnixNano())))
	bookingRNG := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	authUC := usecase.NewAuthUseCase(store, tokens, clock, log)
	searchUC := usecase.NewSearchUseCase(store, provider, skyair.Cities(), clock, log)
	bookingUC := usecase.NewBookingUseCase(store, clock, bookingRNG, log)
	paymentUC := usecase.NewPaymentUseCase(store, clock, log)

	handler := bookinghttp.NewHandler(authUC, searchUC, bookingUC, paymentUC)
	loginLimiter := middleware.NewLoginLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst)

	bookinghttp.RegisterRoutes(e, handler, tokens, loginLimiter)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown stops the server on interrupt signals, draining in-flight
// requests first.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
