package holiday

import "errors"

var (
	// ErrUnknownPolicy is returned for a policy name other than declared or calendar
	ErrUnknownPolicy = errors.New("unknown holiday policy")

	// ErrInvalidHoliday is returned for a malformed extra holiday entry
	ErrInvalidHoliday = errors.New("invalid holiday, expected DD/MM")
)
