package pcf8523

// CountdownTimer is one of the two on-chip countdown units. It borrows the
// Device handle: constructing one performs no bus I/O and does not re-probe,
// and the underlying bus binding stays owned by the Device.
//
// The countdown duration is value/frequency; prefer high values at high
// frequencies for better resolution (value=60 at 1 Hz beats value=1 at
// 1/60 Hz for a one-minute timer).
type CountdownTimer struct {
	d *Device
	r timerRegs
}

// timerRegs carries the per-unit register layout. The two units differ only
// in where their bits live, so the difference is data rather than two code
// paths.
type timerRegs struct {
	mode      bitField
	freq      bitField
	value     bitField
	interrupt uint8 // Control2 mask
	elapsed   uint8 // Control2 mask
	pulsed    uint8 // ClkOutControl mask
}

var (
	timerARegs = timerRegs{
		mode:      fieldTimerAMode,
		freq:      fieldTimerAFreq,
		value:     fieldTimerAValue,
		interrupt: ctrl2TimerAEnable,
		elapsed:   ctrl2TimerAFlag,
		pulsed:    1 << 7, // TAM
	}
	timerBRegs = timerRegs{
		mode:      fieldTimerBMode,
		freq:      fieldTimerBFreq,
		value:     fieldTimerBValue,
		interrupt: ctrl2TimerBEnable,
		elapsed:   ctrl2TimerBFlag,
		pulsed:    1 << 6, // TBM
	}
)

// TimerA returns the first countdown unit. Timer A can also run as a
// watchdog, see SetModeA.
func (d *Device) TimerA() CountdownTimer {
	return CountdownTimer{d: d, r: timerARegs}
}

// TimerB returns the second countdown unit.
func (d *Device) TimerB() CountdownTimer {
	return CountdownTimer{d: d, r: timerBRegs}
}

// Enabled reports whether the unit is counting.
func (t CountdownTimer) Enabled() (bool, error) {
	v, err := t.d.readField(t.r.mode)
	if err != nil {
		return false, err
	}
	return v == int(TimerACountdown) || v == int(TimerAWatchdog), nil
}

// Enable starts or stops the unit in countdown mode.
func (t CountdownTimer) Enable(on bool) error {
	mode := TimerADisabled
	if on {
		mode = TimerACountdown
	}
	return t.d.writeField(t.r.mode, int(mode))
}

// ModeA reads timer A's mode. For timer B this reduces to Enabled.
func (t CountdownTimer) ModeA() (TimerAMode, error) {
	v, err := t.d.readField(t.r.mode)
	return TimerAMode(v), err
}

// SetModeA puts timer A into countdown or watchdog mode. Returns
// ErrFieldRange on timer B, whose enable field has no watchdog encoding.
func (t CountdownTimer) SetModeA(m TimerAMode) error {
	return t.d.writeField(t.r.mode, int(m))
}

// Frequency reads the unit's source clock selection.
func (t CountdownTimer) Frequency() (TimerFrequency, error) {
	v, err := t.d.readField(t.r.freq)
	return TimerFrequency(v), err
}

// SetFrequency selects the unit's source clock.
func (t CountdownTimer) SetFrequency(f TimerFrequency) error {
	return t.d.writeField(t.r.freq, int(f))
}

// Value reads the current countdown value, 0..255. While counting, the chip
// decrements it once per source clock period.
func (t CountdownTimer) Value() (uint8, error) {
	v, err := t.d.readField(t.r.value)
	return uint8(v), err
}

// SetValue loads the countdown value, 0..255.
func (t CountdownTimer) SetValue(v uint8) error {
	return t.d.writeField(t.r.value, int(v))
}

// InterruptEnabled reports whether the unit's elapsed flag drives INT.
func (t CountdownTimer) InterruptEnabled() (bool, error) {
	return t.d.readFlag(Control2, t.r.interrupt)
}

// EnableInterrupt routes the unit's elapsed flag to the INT pin.
func (t CountdownTimer) EnableInterrupt(on bool) error {
	return t.d.writeFlag(Control2, t.r.interrupt, on)
}

// WatchdogInterruptEnabled reports whether timer A asserts INT on watchdog
// expiry. Timer B has no watchdog.
func (t CountdownTimer) WatchdogInterruptEnabled() (bool, error) {
	return t.d.readFlag(Control2, ctrl2WatchdogAEnable)
}

// EnableWatchdogInterrupt routes timer A's watchdog expiry to the INT pin.
func (t CountdownTimer) EnableWatchdogInterrupt(on bool) error {
	return t.d.writeFlag(Control2, ctrl2WatchdogAEnable, on)
}

// Pulsed reports whether the unit asserts INT as a pulse train instead of
// holding it low.
func (t CountdownTimer) Pulsed() (bool, error) {
	return t.d.readFlag(ClkOutControl, t.r.pulsed)
}

// SetPulsed selects pulsed INT assertion for the unit.
func (t CountdownTimer) SetPulsed(on bool) error {
	return t.d.writeFlag(ClkOutControl, t.r.pulsed, on)
}

// Elapsed reports whether the unit has counted down to zero. The flag stays
// set until cleared with ClearElapsed.
func (t CountdownTimer) Elapsed() (bool, error) {
	return t.d.readFlag(Control2, t.r.elapsed)
}

// ClearElapsed acknowledges an elapsed countdown so the flag can assert
// again.
func (t CountdownTimer) ClearElapsed() error {
	return t.d.writeFlag(Control2, t.r.elapsed, false)
}
