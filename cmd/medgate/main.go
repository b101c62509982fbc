package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/medgate/medgate/internal/config"
	"github.com/medgate/medgate/internal/domain/beds"
	"github.com/medgate/medgate/internal/domain/dashboard"
	"github.com/medgate/medgate/internal/domain/inventory"
	"github.com/medgate/medgate/internal/domain/patients"
	"github.com/medgate/medgate/internal/domain/records"
	"github.com/medgate/medgate/internal/domain/staff"
	"github.com/medgate/medgate/internal/domain/visits"
	"github.com/medgate/medgate/internal/platform/auth"
	"github.com/medgate/medgate/internal/platform/gateway"
	"github.com/medgate/medgate/internal/platform/middleware"
	"github.com/medgate/medgate/internal/platform/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medgate",
		Short: "Hospital admin gateway",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	zlog.Logger = logger

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Session store
	ctx := context.Background()
	store, err := session.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer store.Close()
	logger.Info().Msg("connected to redis")

	// Outbound client shared by every backend repository
	gw := gateway.New(cfg.BackendTimeoutDuration())

	// Sessions
	codec := session.NewTokenCodec(cfg.SessionSecret, cfg.SessionTTLDuration())
	sessionSvc := session.NewService(store, gw, codec, cfg.AuthServiceURL, cfg.SessionTTLDuration())
	sessionHandler := session.NewHandler(sessionSvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API groups: login and register are open, everything else requires a
	// session token.
	apiV1 := e.Group("/api/v1")
	sessionHandler.RegisterPublicRoutes(apiV1)

	guarded := apiV1.Group("", auth.Middleware(sessionSvc))
	sessionHandler.RegisterRoutes(guarded)

	// Domain services, one HTTP repository per backing service
	patientRepo := patients.NewHTTPRepository(gw, cfg.PatientsURL)
	patientSvc := patients.NewService(patientRepo)
	patients.NewHandler(patientSvc).RegisterRoutes(guarded)

	userDir := staff.NewHTTPUserDirectory(gw, cfg.AuthServiceURL)
	staffSvc := staff.NewService(staff.NewHTTPRepository(gw, cfg.StaffURL), userDir)
	staff.NewHandler(staffSvc).RegisterRoutes(guarded)

	inventorySvc := inventory.NewService(inventory.NewHTTPRepository(gw, cfg.InventoryURL))
	inventory.NewHandler(inventorySvc).RegisterRoutes(guarded)

	bedSvc := beds.NewService(beds.NewHTTPRepository(gw, cfg.VisitsURL))
	beds.NewHandler(bedSvc).RegisterRoutes(guarded)

	visitRepo := visits.NewHTTPRepository(gw, cfg.VisitsURL)
	vitalsRepo := visits.NewHTTPSubResource[visits.VitalSign](gw, cfg.VisitsURL, "vital-signs")
	treatmentsRepo := visits.NewHTTPSubResource[visits.Treatment](gw, cfg.VisitsURL, "treatments")
	diagnosesRepo := visits.NewHTTPSubResource[visits.Diagnosis](gw, cfg.VisitsURL, "diagnoses")
	prescriptionsRepo := visits.NewHTTPPrescriptions(gw, cfg.VisitsURL)
	admissionsRepo := visits.NewHTTPAdmissions(gw, cfg.VisitsURL)
	visitSvc := visits.NewService(visitRepo, vitalsRepo, treatmentsRepo, diagnosesRepo, prescriptionsRepo, admissionsRepo, bedSvc)
	visits.NewHandler(visitSvc).RegisterRoutes(guarded)

	recordSvc := records.NewService(visitRepo, patientRepo, userDir,
		vitalsRepo, treatmentsRepo, diagnosesRepo, prescriptionsRepo)
	records.NewHandler(recordSvc).RegisterRoutes(guarded)

	dashboardSvc := dashboard.NewService(patientSvc, patientSvc, staffSvc, inventorySvc, visitSvc)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(guarded)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
