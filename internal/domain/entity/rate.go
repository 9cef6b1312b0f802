package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable holds the unit price of every expense category.
// It is fixed for the duration of one calculation pass.
type RateTable struct {
	Breakfast           decimal.Decimal `json:"breakfast"`
	LunchRegular        decimal.Decimal `json:"lunch_regular"`
	LunchHolidayWeekday decimal.Decimal `json:"lunch_holiday_weekday"`
	LunchHolidayWeekend decimal.Decimal `json:"lunch_holiday_weekend"`
	DinnerRegular       decimal.Decimal `json:"dinner_regular"`
	DinnerHoliday       decimal.Decimal `json:"dinner_holiday"`
	Minibar             decimal.Decimal `json:"minibar"`
	Laundry             decimal.Decimal `json:"laundry"`
}

// DefaultRateTable returns the base values the calculator ships with
func DefaultRateTable() RateTable {
	return RateTable{
		Breakfast:           decimal.NewFromInt(20),
		LunchRegular:        decimal.NewFromInt(33),
		LunchHolidayWeekday: decimal.NewFromInt(25),
		LunchHolidayWeekend: decimal.NewFromInt(58),
		DinnerRegular:       decimal.NewFromInt(40),
		DinnerHoliday:       decimal.NewFromInt(58),
		Minibar:             decimal.NewFromInt(15),
		Laundry:             decimal.NewFromInt(200),
	}
}

// Validate rejects negative rates
func (r RateTable) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"breakfast", r.Breakfast},
		{"lunch_regular", r.LunchRegular},
		{"lunch_holiday_weekday", r.LunchHolidayWeekday},
		{"lunch_holiday_weekend", r.LunchHolidayWeekend},
		{"dinner_regular", r.DinnerRegular},
		{"dinner_holiday", r.DinnerHoliday},
		{"minibar", r.Minibar},
		{"laundry", r.Laundry},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: rates.%s = %s", ErrNegativeAmount, f.name, f.value)
		}
	}
	return nil
}

// TransportMode selects how the transport fee is obtained
type TransportMode string

const (
	// TransportModeCalculated derives the fee from distance, fuel efficiency and fuel price
	TransportModeCalculated TransportMode = "calculated"

	// TransportModeFlat uses a fixed fee
	TransportModeFlat TransportMode = "flat"
)

// TransportConfig describes the transport cost estimate
type TransportConfig struct {
	Mode           TransportMode   `json:"mode"`
	DistanceKm     decimal.Decimal `json:"distance_km"`
	FuelEfficiency decimal.Decimal `json:"fuel_efficiency"` // km per liter
	FuelPrice      decimal.Decimal `json:"fuel_price"`      // price per liter
	FlatFee        decimal.Decimal `json:"flat_fee"`
}

// DefaultTransportConfig returns the calculator's default estimate (650 km, 14 km/l, 6.30 per liter)
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		Mode:           TransportModeCalculated,
		DistanceKm:     decimal.NewFromInt(650),
		FuelEfficiency: decimal.NewFromInt(14),
		FuelPrice:      decimal.RequireFromString("6.30"),
		FlatFee:        decimal.NewFromInt(350),
	}
}

// Fee resolves the configuration to the single amount charged per transport day
func (c TransportConfig) Fee() (decimal.Decimal, error) {
	switch c.Mode {
	case TransportModeCalculated:
		if c.DistanceKm.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: transport.distance_km = %s", ErrNegativeAmount, c.DistanceKm)
		}
		if c.FuelPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: transport.fuel_price = %s", ErrNegativeAmount, c.FuelPrice)
		}
		if !c.FuelEfficiency.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidFuelEfficiency, c.FuelEfficiency)
		}
		return c.DistanceKm.Div(c.FuelEfficiency).Mul(c.FuelPrice).Round(2), nil
	case TransportModeFlat:
		if c.FlatFee.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: transport.flat_fee = %s", ErrNegativeAmount, c.FlatFee)
		}
		return c.FlatFee, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownTransportMode, c.Mode)
	}
}
