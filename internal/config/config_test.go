package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "pt-BR", cfg.Locale.Language)
	assert.Equal(t, "R$", cfg.Locale.CurrencySymbol)
	assert.Equal(t, "declared", cfg.Calendar.HolidayPolicy)
	assert.Equal(t, 366, cfg.Limits.MaxTripDays)
	assert.Equal(t, 30, cfg.Limits.MaxTransportDates)

	rates := cfg.RateTable()
	defaults := entity.DefaultRateTable()
	assert.True(t, defaults.Breakfast.Equal(rates.Breakfast))
	assert.True(t, defaults.LunchHolidayWeekend.Equal(rates.LunchHolidayWeekend))
	assert.True(t, defaults.Laundry.Equal(rates.Laundry))

	fee, err := cfg.TransportDefaults().Fee()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("292.50").Equal(fee), "fee = %s", fee)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  read_timeout: 5s
locale:
  language: "en-US"
  currency_symbol: "$"
calendar:
  holiday_policy: "calendar"
  extra_holidays: ["20/01", "23/04"]
rates:
  breakfast: 25.5
transport:
  mode: "flat"
  flat_fee: 410
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "en-US", cfg.Locale.Language)
	assert.Equal(t, "calendar", cfg.Calendar.HolidayPolicy)
	assert.Equal(t, []string{"20/01", "23/04"}, cfg.Calendar.ExtraHolidays)
	assert.True(t, decimal.RequireFromString("25.5").Equal(cfg.RateTable().Breakfast))
	// untouched keys keep their defaults
	assert.True(t, decimal.NewFromInt(33).Equal(cfg.RateTable().LunchRegular))

	fee, err := cfg.TransportDefaults().Fee()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(410).Equal(fee))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRIP_PORT", "9090")
	t.Setenv("TRIP_LOGGER_LEVEL", "debug")
	t.Setenv("TRIP_HOLIDAY_POLICY", "calendar")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "calendar", cfg.Calendar.HolidayPolicy)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown holiday policy",
			content: "calendar:\n  holiday_policy: lunar\n",
			wantErr: "calendar.holiday_policy",
		},
		{
			name:    "negative rate",
			content: "rates:\n  minibar: -1\n",
			wantErr: "rates",
		},
		{
			name:    "zero fuel efficiency",
			content: "transport:\n  fuel_efficiency: 0\n",
			wantErr: "transport",
		},
		{
			name:    "unknown transport mode",
			content: "transport:\n  mode: teleport\n",
			wantErr: "transport",
		},
		{
			name:    "bad port",
			content: "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
		{
			name:    "zero trip limit",
			content: "limits:\n  max_trip_days: 0\n",
			wantErr: "limits.max_trip_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRIP_DOTENV_PROBE=loaded\n"), 0o644))
	t.Setenv("TRIP_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("TRIP_DOTENV_PROBE"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TRIP_DOTENV_PROBE"))
}
