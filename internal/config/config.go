package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/garyjia/trip-expense/internal/domain/entity"
	"github.com/garyjia/trip-expense/internal/domain/holiday"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Locale    LocaleConfig    `mapstructure:"locale"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Rates     RatesConfig     `mapstructure:"rates"`
	Transport TransportConfig `mapstructure:"transport"`
	Limits    LimitsConfig    `mapstructure:"limits"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// LocaleConfig selects number formatting and report captions
type LocaleConfig struct {
	Language       string `mapstructure:"language"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// CalendarConfig selects how holidays are decided
type CalendarConfig struct {
	HolidayPolicy string   `mapstructure:"holiday_policy"`
	ExtraHolidays []string `mapstructure:"extra_holidays"` // "DD/MM"
}

// RatesConfig holds the default per-item rates
type RatesConfig struct {
	Breakfast           float64 `mapstructure:"breakfast"`
	LunchRegular        float64 `mapstructure:"lunch_regular"`
	LunchHolidayWeekday float64 `mapstructure:"lunch_holiday_weekday"`
	LunchHolidayWeekend float64 `mapstructure:"lunch_holiday_weekend"`
	DinnerRegular       float64 `mapstructure:"dinner_regular"`
	DinnerHoliday       float64 `mapstructure:"dinner_holiday"`
	Minibar             float64 `mapstructure:"minibar"`
	Laundry             float64 `mapstructure:"laundry"`
}

// TransportConfig holds the default transport parameters
type TransportConfig struct {
	Mode           string  `mapstructure:"mode"`
	DistanceKm     float64 `mapstructure:"distance_km"`
	FuelEfficiency float64 `mapstructure:"fuel_efficiency"`
	FuelPrice      float64 `mapstructure:"fuel_price"`
	FlatFee        float64 `mapstructure:"flat_fee"`
}

// LimitsConfig bounds request sizes
type LimitsConfig struct {
	MaxTripDays       int `mapstructure:"max_trip_days"`
	MaxTransportDates int `mapstructure:"max_transport_dates"`
}

// Load loads configuration from file, .env and environment variables.
// An empty configPath yields the defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding the environment
func loadDotEnv(path string) error {
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")

	// Locale defaults
	v.SetDefault("locale.language", "pt-BR")
	v.SetDefault("locale.currency_symbol", "R$")

	// Calendar defaults
	v.SetDefault("calendar.holiday_policy", string(holiday.PolicyDeclared))
	v.SetDefault("calendar.extra_holidays", []string{})

	// Rate defaults
	v.SetDefault("rates.breakfast", 20.0)
	v.SetDefault("rates.lunch_regular", 33.0)
	v.SetDefault("rates.lunch_holiday_weekday", 25.0)
	v.SetDefault("rates.lunch_holiday_weekend", 58.0)
	v.SetDefault("rates.dinner_regular", 40.0)
	v.SetDefault("rates.dinner_holiday", 58.0)
	v.SetDefault("rates.minibar", 15.0)
	v.SetDefault("rates.laundry", 200.0)

	// Transport defaults
	v.SetDefault("transport.mode", string(entity.TransportModeCalculated))
	v.SetDefault("transport.distance_km", 650.0)
	v.SetDefault("transport.fuel_efficiency", 14.0)
	v.SetDefault("transport.fuel_price", 6.30)
	v.SetDefault("transport.flat_fee", 350.0)

	// Limits
	v.SetDefault("limits.max_trip_days", 366)
	v.SetDefault("limits.max_transport_dates", 30)
}

// bindEnvVars binds the short environment names used by deployments
func bindEnvVars(v *viper.Viper) error {
	bindings := map[string]string{
		"server.port":             "TRIP_PORT",
		"logger.level":            "TRIP_LOG_LEVEL",
		"locale.language":         "TRIP_LANGUAGE",
		"calendar.holiday_policy": "TRIP_HOLIDAY_POLICY",
		"transport.mode":          "TRIP_TRANSPORT_MODE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "TRIP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Locale.Language == "" {
		return fmt.Errorf("locale.language is required")
	}

	if _, err := holiday.ParsePolicyName(c.Calendar.HolidayPolicy); err != nil {
		return fmt.Errorf("calendar.holiday_policy: %w", err)
	}

	if err := c.RateTable().Validate(); err != nil {
		return fmt.Errorf("rates: %w", err)
	}

	if _, err := c.TransportDefaults().Fee(); err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	if c.Limits.MaxTripDays <= 0 {
		return fmt.Errorf("limits.max_trip_days must be positive")
	}
	if c.Limits.MaxTransportDates <= 0 {
		return fmt.Errorf("limits.max_transport_dates must be positive")
	}

	return nil
}

// Address returns host:port for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// RateTable converts the configured rates to the domain type
func (c *Config) RateTable() entity.RateTable {
	r := c.Rates
	return entity.RateTable{
		Breakfast:           decimal.NewFromFloat(r.Breakfast),
		LunchRegular:        decimal.NewFromFloat(r.LunchRegular),
		LunchHolidayWeekday: decimal.NewFromFloat(r.LunchHolidayWeekday),
		LunchHolidayWeekend: decimal.NewFromFloat(r.LunchHolidayWeekend),
		DinnerRegular:       decimal.NewFromFloat(r.DinnerRegular),
		DinnerHoliday:       decimal.NewFromFloat(r.DinnerHoliday),
		Minibar:             decimal.NewFromFloat(r.Minibar),
		Laundry:             decimal.NewFromFloat(r.Laundry),
	}
}

// TransportDefaults converts the configured transport parameters to the domain type
func (c *Config) TransportDefaults() entity.TransportConfig {
	t := c.Transport
	return entity.TransportConfig{
		Mode:           entity.TransportMode(t.Mode),
		DistanceKm:     decimal.NewFromFloat(t.DistanceKm),
		FuelEfficiency: decimal.NewFromFloat(t.FuelEfficiency),
		FuelPrice:      decimal.NewFromFloat(t.FuelPrice),
		FlatFee:        decimal.NewFromFloat(t.FlatFee),
	}
}
