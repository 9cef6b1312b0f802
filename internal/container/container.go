// Package container wires configuration, the trip service and its adapters.
package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/application/service"
	"github.com/garyjia/trip-expense/internal/config"
	httpserver "github.com/garyjia/trip-expense/internal/interfaces/http"
	"github.com/garyjia/trip-expense/pkg/utils"
)

// Container holds the application's long-lived components
type Container struct {
	config *config.Config
	logger *zap.Logger

	tripService service.TripService
}

// New builds every component in dependency order
func New(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	locale, err := ProvideLocale(&cfg.Locale)
	if err != nil {
		return nil, err
	}

	policy, err := ProvideHolidayPolicy(&cfg.Calendar, logger)
	if err != nil {
		return nil, err
	}

	exporter := ProvideExporter(locale, logger)

	tripService, err := ProvideTripService(&TripServiceDeps{
		Config:   cfg,
		Policy:   policy,
		Locale:   locale,
		Exporter: exporter,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trip service: %w", err)
	}

	logger.Info("Container initialized",
		zap.String("locale", locale.Tag.String()),
		zap.String("holiday_policy", string(policy.Name())))

	return &Container{
		config:      cfg,
		logger:      logger,
		tripService: tripService,
	}, nil
}

// TripService returns the trip service
func (c *Container) TripService() service.TripService {
	return c.tripService
}

// HTTPServer creates the HTTP adapter over the trip service
func (c *Container) HTTPServer() *httpserver.Server {
	return httpserver.NewServer(httpserver.ServerConfig{
		Host:         c.config.Server.Host,
		Port:         c.config.Server.Port,
		ReadTimeout:  c.config.Server.ReadTimeout,
		WriteTimeout: c.config.Server.WriteTimeout,
	}, c.tripService, utils.NewKeyValueLogger(c.logger.Named("http")))
}
