package pcf8523

import "errors"

// Sentinel errors (TinyGo-safe; no fmt). Bus errors are returned unchanged
// from the underlying I2C implementation and are not wrapped here.
var (
	// ErrDeviceNotFound means the identity probe read back register content
	// that a PCF8523 cannot produce. Likely a different chip at 0x68.
	ErrDeviceNotFound = errors.New("pcf8523: device not found")

	ErrYearRange    = errors.New("pcf8523: year must be 2000..2099")
	ErrMonthRange   = errors.New("pcf8523: month must be 1..12")
	ErrDayRange     = errors.New("pcf8523: day must be 1..31")
	ErrWeekdayRange = errors.New("pcf8523: weekday must be 0..6")
	ErrHourRange    = errors.New("pcf8523: hour must be 0..23")
	ErrMinuteRange  = errors.New("pcf8523: minute must be 0..59")
	ErrSecondRange  = errors.New("pcf8523: second must be 0..59")

	// ErrFieldRange means a value does not fit the target register field,
	// e.g. a calibration offset outside -64..63.
	ErrFieldRange = errors.New("pcf8523: value out of range for register field")
)
