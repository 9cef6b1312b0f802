package entity

import "errors"

var (
	// ErrInvalidDate is returned when a date string cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrNegativeAmount is returned when a rate or fee is below zero
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidFuelEfficiency is returned when fuel efficiency is not positive
	ErrInvalidFuelEfficiency = errors.New("fuel efficiency must be greater than zero")

	// ErrUnknownTransportMode is returned for a transport mode other than calculated or flat
	ErrUnknownTransportMode = errors.New("unknown transport mode")

	// ErrUnknownDayType is returned when decoding an unrecognized day type
	ErrUnknownDayType = errors.New("unknown day type")
)
