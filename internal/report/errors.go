package report

import "errors"

var (
	// ErrInvalidLocale is returned for an unparseable language tag
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrUnknownFormat is returned for an export format other than txt, csv, xlsx or pdf
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrRenderFailed wraps errors from the underlying document libraries
	ErrRenderFailed = errors.New("failed to render report")
)
