package pcf8523

// AlarmValue is an optional alarm field. The zero value is "not used as a
// match condition". On the wire an unused field carries the disable bit
// (bit 7) of its register byte.
type AlarmValue struct {
	value uint8
	set   bool
}

// AlarmAt returns an enabled alarm field with the given value.
func AlarmAt(v uint8) AlarmValue {
	return AlarmValue{value: v, set: true}
}

// Get returns the field value and whether the field is enabled.
func (v AlarmValue) Get() (uint8, bool) {
	return v.value, v.set
}

// AlarmSpec selects when the alarm fires. Each enabled field must match for
// the alarm flag to assert; with no field enabled the alarm never fires.
// Seconds are not supported by the chip, alarms trigger on full minutes.
type AlarmSpec struct {
	Minute  AlarmValue // 0..59
	Hour    AlarmValue // 0..23
	Day     AlarmValue // 1..31
	Weekday AlarmValue // 0..6
}

const alarmDisable = 0x80

// decodeAlarm unpacks the 4-byte block starting at the Alarm register.
// Wire order: minute, hour, day, weekday. A byte with bit 7 set means the
// field takes no part in the match; its remaining bits are ignored.
func decodeAlarm(buf [4]byte) AlarmSpec {
	var a AlarmSpec
	if buf[0]&alarmDisable == 0 {
		a.Minute = AlarmAt(uint8(bcdToDec(buf[0] & 0x7F)))
	}
	if buf[1]&alarmDisable == 0 {
		a.Hour = AlarmAt(uint8(bcdToDec(buf[1] & 0x7F)))
	}
	if buf[2]&alarmDisable == 0 {
		a.Day = AlarmAt(uint8(bcdToDec(buf[2] & 0x7F)))
	}
	if buf[3]&alarmDisable == 0 {
		a.Weekday = AlarmAt(uint8(bcdToDec(buf[3] & 0x7F)))
	}
	return a
}

// encodeAlarm packs an AlarmSpec for the 4-byte Alarm block. Disabled fields
// encode as 0x80. Enabled fields outside their valid range are rejected.
func encodeAlarm(a AlarmSpec) ([4]byte, error) {
	buf := [4]byte{alarmDisable, alarmDisable, alarmDisable, alarmDisable}
	if v, ok := a.Minute.Get(); ok {
		if v > 59 {
			return [4]byte{}, ErrMinuteRange
		}
		buf[0] = decToBcd(int(v))
	}
	if v, ok := a.Hour.Get(); ok {
		if v > 23 {
			return [4]byte{}, ErrHourRange
		}
		buf[1] = decToBcd(int(v))
	}
	if v, ok := a.Day.Get(); ok {
		if v < 1 || v > 31 {
			return [4]byte{}, ErrDayRange
		}
		buf[2] = decToBcd(int(v))
	}
	if v, ok := a.Weekday.Get(); ok {
		if v > 6 {
			return [4]byte{}, ErrWeekdayRange
		}
		buf[3] = decToBcd(int(v))
	}
	return buf, nil
}
