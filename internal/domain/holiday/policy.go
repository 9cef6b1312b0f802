// Package holiday decides whether a trip day counts as a holiday.
//
// Two policies exist and exactly one is active per deployment: the traveller
// declares holidays day by day, or the date is looked up in a fixed national
// calendar. The declared flag is ignored under the calendar policy.
package holiday

import (
	"fmt"
	"strings"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// PolicyName identifies a holiday-detection policy in configuration
type PolicyName string

const (
	PolicyDeclared PolicyName = "declared"
	PolicyCalendar PolicyName = "calendar"
)

// Policy resolves the holiday indicator of a date
type Policy interface {
	// IsHoliday reports whether date is a holiday given the user's declaration
	IsHoliday(date entity.Date, declared bool) bool

	// HolidayName names the holiday on date, or returns "" when the policy
	// has no name for it
	HolidayName(date entity.Date) string

	// Name returns the configured policy name
	Name() PolicyName
}

// ParsePolicyName validates a policy name from configuration
func ParsePolicyName(s string) (PolicyName, error) {
	switch PolicyName(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyDeclared:
		return PolicyDeclared, nil
	case PolicyCalendar:
		return PolicyCalendar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// DeclaredPolicy trusts the per-day holiday checkbox
type DeclaredPolicy struct{}

// NewDeclaredPolicy creates a DeclaredPolicy
func NewDeclaredPolicy() *DeclaredPolicy {
	return &DeclaredPolicy{}
}

// IsHoliday returns the declaration unchanged
func (p *DeclaredPolicy) IsHoliday(_ entity.Date, declared bool) bool {
	return declared
}

// HolidayName is always empty: declared holidays carry no name
func (p *DeclaredPolicy) HolidayName(_ entity.Date) string {
	return ""
}

// Name returns PolicyDeclared
func (p *DeclaredPolicy) Name() PolicyName {
	return PolicyDeclared
}

// NewPolicy builds the policy selected by name. extraHolidays ("DD/MM") only
// apply to the calendar policy.
func NewPolicy(name string, extraHolidays []string) (Policy, error) {
	parsed, err := ParsePolicyName(name)
	if err != nil {
		return nil, err
	}
	if parsed == PolicyDeclared {
		return NewDeclaredPolicy(), nil
	}
	policy, err := NewCalendarPolicy(extraHolidays...)
	if err != nil {
		return nil, err
	}
	return policy, nil
}
