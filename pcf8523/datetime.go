package pcf8523

import "time"

// DateTime is a calendar timestamp as the chip stores it. The chip keeps its
// own weekday counter instead of deriving it from the date, so DateTime
// round-trips the stored weekday where time.Time could not. Subseconds are
// not supported by the hardware.
type DateTime struct {
	Year    int // 2000..2099
	Month   int // 1..12
	Day     int // 1..31
	Weekday int // 0..6, chip does not interpret the value
	Hour    int // 0..23
	Minute  int // 0..59
	Second  int // 0..59
}

// Time converts to a time.Time in UTC, dropping the stored weekday.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// FromTime builds a DateTime from a time.Time, using Go's weekday numbering
// (Sunday = 0). Sub-second precision is discarded.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: int(t.Weekday()),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

func (dt DateTime) validate() error {
	switch {
	case dt.Year < 2000 || dt.Year > 2099:
		return ErrYearRange
	case dt.Month < 1 || dt.Month > 12:
		return ErrMonthRange
	case dt.Day < 1 || dt.Day > 31:
		return ErrDayRange
	case dt.Weekday < 0 || dt.Weekday > 6:
		return ErrWeekdayRange
	case dt.Hour < 0 || dt.Hour > 23:
		return ErrHourRange
	case dt.Minute < 0 || dt.Minute > 59:
		return ErrMinuteRange
	case dt.Second < 0 || dt.Second > 59:
		return ErrSecondRange
	}
	return nil
}

// decodeDateTime unpacks the 7-byte block starting at the Time register.
// Wire order: second, minute, hour, day, weekday, month, year. Status and
// reserved bits are masked off before BCD conversion.
func decodeDateTime(buf [7]byte) DateTime {
	return DateTime{
		Second:  bcdToDec(buf[0] & 0x7F), // bit 7 is the oscillator-stop flag
		Minute:  bcdToDec(buf[1] & 0x7F),
		Hour:    bcdToDec(buf[2] & 0x3F),
		Day:     bcdToDec(buf[3] & 0x3F),
		Weekday: bcdToDec(buf[4] & 0x07),
		Month:   bcdToDec(buf[5] & 0x1F),
		Year:    bcdToDec(buf[6]) + 2000,
	}
}

// encodeDateTime packs a DateTime for the 7-byte Time block. Out-of-range
// fields are rejected rather than truncated to the register width: a wrapped
// BCD byte would silently set a wrong but plausible time.
func encodeDateTime(dt DateTime) ([7]byte, error) {
	if err := dt.validate(); err != nil {
		return [7]byte{}, err
	}
	return [7]byte{
		decToBcd(dt.Second), // oscillator-stop flag written 0
		decToBcd(dt.Minute),
		decToBcd(dt.Hour),
		decToBcd(dt.Day),
		decToBcd(dt.Weekday),
		decToBcd(dt.Month),
		decToBcd(dt.Year - 2000),
	}, nil
}
