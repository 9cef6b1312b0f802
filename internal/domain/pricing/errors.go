package pricing

import "errors"

// ErrInvalidDateRange is returned when the trip ends before it starts
var ErrInvalidDateRange = errors.New("end date must not be before start date")
