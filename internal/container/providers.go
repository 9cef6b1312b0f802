package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/application/service"
	"github.com/garyjia/trip-expense/internal/config"
	"github.com/garyjia/trip-expense/internal/domain/holiday"
	"github.com/garyjia/trip-expense/internal/report"
	"github.com/garyjia/trip-expense/pkg/utils"
)

// ProvideLocale parses the configured locale
func ProvideLocale(cfg *config.LocaleConfig) (report.Locale, error) {
	locale, err := report.ParseLocale(cfg.Language, cfg.CurrencySymbol)
	if err != nil {
		return report.Locale{}, fmt.Errorf("locale.language: %w", err)
	}
	return locale, nil
}

// ProvideHolidayPolicy builds the single holiday policy of this deployment
func ProvideHolidayPolicy(cfg *config.CalendarConfig, logger *zap.Logger) (holiday.Policy, error) {
	policy, err := holiday.NewPolicy(cfg.HolidayPolicy, cfg.ExtraHolidays)
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday policy: %w", err)
	}

	logger.Info("Holiday policy selected",
		zap.String("policy", string(policy.Name())),
		zap.Strings("extra_holidays", cfg.ExtraHolidays))

	return policy, nil
}

// ProvideExporter creates the report exporter for locale
func ProvideExporter(locale report.Locale, logger *zap.Logger) *report.Exporter {
	return report.NewExporter(
		report.NewFormatter(locale),
		report.LabelsFor(locale.Tag),
		logger.Named("report"),
	)
}

// TripServiceDeps holds the dependencies of the trip service
type TripServiceDeps struct {
	Config   *config.Config
	Policy   holiday.Policy
	Locale   report.Locale
	Exporter *report.Exporter
	Logger   *zap.Logger
}

// ProvideTripService creates the trip service from configured defaults
func ProvideTripService(deps *TripServiceDeps) (service.TripService, error) {
	if deps.Exporter == nil {
		return nil, fmt.Errorf("exporter is required")
	}

	settings := service.Settings{
		Rates:             deps.Config.RateTable(),
		Transport:         deps.Config.TransportDefaults(),
		Policy:            deps.Policy,
		Locale:            deps.Locale,
		MaxTripDays:       deps.Config.Limits.MaxTripDays,
		MaxTransportDates: deps.Config.Limits.MaxTransportDates,
	}

	return service.NewTripService(
		settings,
		deps.Exporter,
		utils.NewKeyValueLogger(deps.Logger.Named("trip")),
	), nil
}
