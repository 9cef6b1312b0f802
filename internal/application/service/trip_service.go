package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/garyjia/trip-expense/internal/domain/entity"
	"github.com/garyjia/trip-expense/internal/domain/holiday"
	"github.com/garyjia/trip-expense/internal/domain/pricing"
	"github.com/garyjia/trip-expense/internal/report"
	"github.com/garyjia/trip-expense/pkg/utils"
)

// ErrValidation marks errors caused by the caller's input
var ErrValidation = errors.New("validation failed")

// Logger interface for service logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Settings are the deployment-wide defaults a TripService starts from
type Settings struct {
	Rates             entity.RateTable
	Transport         entity.TransportConfig
	Policy            holiday.Policy
	Locale            report.Locale
	MaxTripDays       int
	MaxTransportDates int
}

// Defaults is what a form shows before the user edits anything
type Defaults struct {
	Rates             entity.RateTable       `json:"rates"`
	Transport         entity.TransportConfig `json:"transport"`
	TransportFee      decimal.Decimal        `json:"transport_fee"`
	HolidayPolicy     holiday.PolicyName     `json:"holiday_policy"`
	Locale            string                 `json:"locale"`
	CurrencySymbol    string                 `json:"currency_symbol"`
	MaxTripDays       int                    `json:"max_trip_days"`
	MaxTransportDates int                    `json:"max_transport_dates"`
}

// PlanRequest asks for the classification of a date range
type PlanRequest struct {
	StartDate entity.Date   `json:"start_date"`
	EndDate   entity.Date   `json:"end_date"`
	Holidays  []entity.Date `json:"holidays"` // days the user marked as holiday
}

// PlannedDay is one day of a plan with the lunch option the form offers
type PlannedDay struct {
	Date        entity.Date        `json:"date"`
	Type        entity.DayType     `json:"type"`
	Lunch       entity.LunchOption `json:"lunch"`
	HolidayName string             `json:"holiday_name,omitempty"`
}

// Plan is the classified date range
type Plan struct {
	Days          []PlannedDay       `json:"days"`
	HolidayPolicy holiday.PolicyName `json:"holiday_policy"`
}

// DayInput carries the checkboxes collected for one date
type DayInput struct {
	Date entity.Date `json:"date"`
	entity.DayFlags
	Holiday bool `json:"holiday"`
}

// CalculationRequest is a complete trip submission. Rates and Transport
// override the configured defaults field by field.
type CalculationRequest struct {
	StartDate      entity.Date         `json:"start_date"`
	EndDate        entity.Date         `json:"end_date"`
	Rates          *RateOverrides      `json:"rates,omitempty"`
	Transport      *TransportOverrides `json:"transport,omitempty"`
	Days           []DayInput          `json:"days"`
	TransportDates []entity.Date       `json:"transport_dates"`
}

// Calculation is the result of one calculation pass
type Calculation struct {
	Days                    []entity.DayRecord `json:"days"`
	Report                  entity.Report      `json:"report"`
	TransportFee            decimal.Decimal    `json:"transport_fee"`
	UnmatchedTransportDates []entity.Date      `json:"unmatched_transport_dates"`
	Text                    string             `json:"text"`
}

// TripService prices trips and renders their reports
type TripService interface {
	Defaults(ctx context.Context) (*Defaults, error)
	Plan(ctx context.Context, req PlanRequest) (*Plan, error)
	Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error)
	Export(ctx context.Context, req CalculationRequest, format report.Format) (*report.File, error)
}

type tripServiceImpl struct {
	settings Settings
	exporter *report.Exporter
	logger   Logger
}

// NewTripService creates a new TripService
func NewTripService(settings Settings, exporter *report.Exporter, logger Logger) TripService {
	if settings.Policy == nil {
		settings.Policy = holiday.NewDeclaredPolicy()
	}
	return &tripServiceImpl{
		settings: settings,
		exporter: exporter,
		logger:   logger,
	}
}

// Defaults returns the configured rates, transport parameters and limits
func (s *tripServiceImpl) Defaults(ctx context.Context) (*Defaults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fee, err := s.settings.Transport.Fee()
	if err != nil {
		return nil, fmt.Errorf("configured transport: %w", err)
	}

	return &Defaults{
		Rates:             s.settings.Rates,
		Transport:         s.settings.Transport,
		TransportFee:      fee,
		HolidayPolicy:     s.settings.Policy.Name(),
		Locale:            s.settings.Locale.Tag.String(),
		CurrencySymbol:    s.settings.Locale.CurrencySymbol,
		MaxTripDays:       s.settings.MaxTripDays,
		MaxTransportDates: s.settings.MaxTransportDates,
	}, nil
}

// Plan classifies every day of the range and reports the offered lunch option
func (s *tripServiceImpl) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dates, err := s.tripDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	declared := make(map[entity.Date]bool, len(req.Holidays))
	for _, d := range req.Holidays {
		declared[d] = true
	}

	days := make([]PlannedDay, 0, len(dates))
	for _, date := range dates {
		dayType := pricing.ClassifyDate(date, s.settings.Policy, declared[date])
		day := PlannedDay{
			Date:  date,
			Type:  dayType,
			Lunch: pricing.OfferedLunch(dayType),
		}
		if dayType.IsHoliday() {
			day.HolidayName = s.settings.Policy.HolidayName(date)
		}
		days = append(days, day)
	}

	return &Plan{Days: days, HolidayPolicy: s.settings.Policy.Name()}, nil
}

// Calculate runs one isolated pass: resolve rates and fee, build and price
// the days, aggregate and render the descriptive text.
func (s *tripServiceImpl) Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := s.tripDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if err := utils.ValidateTransportDateCount(len(req.TransportDates), s.settings.MaxTransportDates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rates := req.Rates.Apply(s.settings.Rates)
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	transport := req.Transport.Apply(s.settings.Transport)
	fee, err := transport.Fee()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	inputs, err := dayInputs(req.Days)
	if err != nil {
		return nil, err
	}

	days, err := pricing.BuildTrip(req.StartDate, req.EndDate, inputs, s.settings.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	unmatched := pricing.RegisterTransportDates(days, req.TransportDates)
	if len(unmatched) > 0 {
		s.logger.Info("Transport dates outside trip ignored", "dates", unmatched)
	}

	rows := pricing.PriceAll(days, rates, fee, entity.NewTransportDates(req.TransportDates...))
	result := pricing.Aggregate(rows)

	s.logger.Info("Trip calculated",
		"start_date", req.StartDate.String(),
		"end_date", req.EndDate.String(),
		"days", len(days),
		"grand_total", result.GrandTotal.StringFixed(2))

	return &Calculation{
		Days:                    days,
		Report:                  result,
		TransportFee:            fee,
		UnmatchedTransportDates: unmatched,
		Text:                    s.exporter.Text(result),
	}, nil
}

// Export calculates the trip and renders it as format
func (s *tripServiceImpl) Export(ctx context.Context, req CalculationRequest, format report.Format) (*report.File, error) {
	format, err := report.ParseFormat(string(format))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	calc, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}

	file, err := s.exporter.Export(format, calc.Report)
	if err != nil {
		s.logger.Error("Failed to export trip", "error", err, "format", string(format))
		return nil, fmt.Errorf("failed to export trip: %w", err)
	}

	s.logger.Info("Trip exported", "format", string(format), "file_name", file.Name)
	return file, nil
}

// tripDates validates the range against the configured trip length limit
func (s *tripServiceImpl) tripDates(start, end entity.Date) ([]entity.Date, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", ErrValidation)
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v", ErrValidation,
			fmt.Errorf("%w: %s is before %s", pricing.ErrInvalidDateRange, end, start))
	}

	if err := utils.ValidateTripLength(start.DaysUntil(end)+1, s.settings.MaxTripDays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	dates, err := pricing.TripDays(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return dates, nil
}

// dayInputs indexes the collected days by date; a date may appear only once
func dayInputs(days []DayInput) (map[entity.Date]pricing.DayInput, error) {
	inputs := make(map[entity.Date]pricing.DayInput, len(days))
	for _, d := range days {
		if d.Date.IsZero() {
			return nil, fmt.Errorf("%w: day input without date", ErrValidation)
		}
		if _, dup := inputs[d.Date]; dup {
			return nil, fmt.Errorf("%w: duplicate input for %s", ErrValidation, d.Date)
		}
		inputs[d.Date] = pricing.DayInput{Flags: d.DayFlags, DeclaredHoliday: d.Holiday}
	}
	return inputs, nil
}
