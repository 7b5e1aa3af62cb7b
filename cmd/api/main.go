package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wayfinder.gobus.org/internal/app"
	"wayfinder.gobus.org/internal/appconf"
	"wayfinder.gobus.org/internal/enrich"
	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/metrics"
	"wayfinder.gobus.org/internal/restapi"
	"wayfinder.gobus.org/internal/routing"
	"wayfinder.gobus.org/internal/schedule"
)

func main() {
	// A missing .env file is fine; flags and real environment still apply.
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag, apiKeysFlag string
	var scheduleConfig schedule.Config
	var reloadMinutes int

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envString("ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envString("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 100), "Requests per second allowed per API key")
	flag.StringVar(&scheduleConfig.GTFSSource, "gtfs-source", envString("GTFS_SOURCE", ""), "URL or path of a static GTFS zip file")
	flag.StringVar(&scheduleConfig.CSVDir, "csv-dir", envString("CSV_DIR", ""), "Directory of schedule CSV files")
	flag.StringVar(&scheduleConfig.DataPath, "data-path", envString("DATA_PATH", "./data/wayfinder.db"), "Path to the schedule database")
	flag.IntVar(&reloadMinutes, "reload-minutes", envInt("RELOAD_MINUTES", 0), "Minutes between GTFS reloads, 0 to disable")
	flag.BoolVar(&scheduleConfig.Verbose, "verbose", false, "Log import progress")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	scheduleConfig.Env = cfg.Env
	scheduleConfig.ReloadInterval = time.Duration(reloadMinutes) * time.Minute

	scheduleManager, err := schedule.InitManager(scheduleConfig, logger)
	if err != nil {
		logger.Error("failed to initialize schedule manager", "error", err)
		os.Exit(1)
	}
	defer scheduleManager.Shutdown()

	scheduleManager.PrintStatistics()

	collector := metrics.NewCollector()
	snapshot := scheduleManager.Snapshot()
	collector.ObserveSnapshot(snapshot.TripCount(), snapshot.LocationCount())

	planner := routing.NewPlanner(routing.DefaultOptions(),
		enrich.NewLocaleEnricher(scheduleManager.ScheduleDB.Queries))

	application := &app.Application{
		Config:          cfg,
		Logger:          logger,
		ScheduleManager: scheduleManager,
		Planner:         planner,
		Metrics:         collector,
	}

	api := restapi.NewRestAPI(application)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	handler := api.WithSecurityHeaders(mux)
	handler = restapi.CompressionMiddleware(handler)
	handler = api.RateLimiter()(handler)
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
		return fallback
	}
	return n
}
