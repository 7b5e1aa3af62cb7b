package app

import (
	"log/slog"

	"wayfinder.gobus.org/internal/appconf"
	"wayfinder.gobus.org/internal/metrics"
	"wayfinder.gobus.org/internal/routing"
	"wayfinder.gobus.org/internal/schedule"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config          appconf.Config
	Logger          *slog.Logger
	ScheduleManager *schedule.Manager
	Planner         *routing.Planner
	Metrics         *metrics.Collector
}
