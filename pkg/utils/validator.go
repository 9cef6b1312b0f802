package utils

import "fmt"

// ValidateTransportDateCount enforces the upper bound on registered transport dates
func ValidateTransportDateCount(count, max int) error {
	if count < 0 {
		return fmt.Errorf("transport date count must not be negative: %d", count)
	}
	if max > 0 && count > max {
		return fmt.Errorf("too many transport dates: %d (maximum %d)", count, max)
	}
	return nil
}

// ValidateTripLength enforces the upper bound on trip days
func ValidateTripLength(days, max int) error {
	if max > 0 && days > max {
		return fmt.Errorf("trip too long: %d days (maximum %d)", days, max)
	}
	return nil
}
