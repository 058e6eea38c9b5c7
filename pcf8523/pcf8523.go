// Package pcf8523 implements a driver for the PCF8523 Real-Time Clock (RTC):
// reading and setting the time, the minute/hour/day/weekday alarm, oscillator
// calibration, the CLKOUT square wave output, and the two countdown timers.
//
// The chip has no concept of time zones; the convention here is to store UTC.
// Milliseconds are not supported by the hardware, and the alarm fires on full
// minutes only.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8523.pdf
package pcf8523

import (
	"time"

	"tinygo.org/x/drivers"
)

// Device wraps an I2C connection to a PCF8523. All methods are synchronous
// and issue blocking bus transactions. Read-modify-write accessors are not
// atomic on the bus; a Device assumes a single owner.
type Device struct {
	bus     drivers.I2C
	Address uint8

	// fixed buffers to avoid per-call heap allocations
	w [8]byte
	r [7]byte
}

// New creates a new RTC driver on the given bus with the fixed peripheral
// address. Does no bus I/O; call Configure next.
func New(i2c drivers.I2C) *Device {
	return &Device{
		bus:     i2c,
		Address: Address,
	}
}

// Connected probes for the chip. The PCF8523 carries no identity register,
// but the unused bits Control1[6] and Control2[7] always read zero, so a
// device answering at 0x68 with either bit set is something else.
func (d *Device) Connected() (bool, error) {
	c1, err := d.readByte(Control1)
	if err != nil {
		return false, err
	}
	c2, err := d.readByte(Control2)
	if err != nil {
		return false, err
	}
	return c1&ctrl1Reserved == 0 && c2&ctrl2Reserved == 0, nil
}

// Configure probes for the chip and enables battery switchover and battery
// low detection. Returns ErrDeviceNotFound if the probe fails.
func (d *Device) Configure() error {
	ok, err := d.Connected()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeviceNotFound
	}
	return d.SetPowerManagement(StandardBatterySwitchover)
}

// Now reads the current time. The whole 7-byte block is read in one bus
// transaction, so the fields are coherent even across a minute rollover.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.DateTime()
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time(), nil
}

// Set sets the current time from a time.Time interpreted in UTC, storing
// Go's weekday numbering (Sunday = 0).
func (d *Device) Set(t time.Time) error {
	return d.SetDateTime(FromTime(t.UTC()))
}

// DateTime reads the raw calendar registers, including the stored weekday.
func (d *Device) DateTime() (DateTime, error) {
	var buf [7]byte
	if err := d.readRegister(Time, buf[:]); err != nil {
		return DateTime{}, err
	}
	return decodeDateTime(buf), nil
}

// SetDateTime writes the calendar registers and restarts the clock. Battery
// switchover is put into standard mode first: the chip ties power-loss
// detection to knowing a valid time was just supplied, so clearing the
// lost-power condition belongs to the time-set operation, not the caller.
func (d *Device) SetDateTime(dt DateTime) error {
	buf, err := encodeDateTime(dt)
	if err != nil {
		return err
	}
	if err := d.SetPowerManagement(StandardBatterySwitchover); err != nil {
		return err
	}
	// writing seconds with bit 7 low also clears the oscillator-stop flag
	return d.writeRegister(Time, buf[:])
}

// LostPower reports whether the oscillator stopped since the time was last
// set, meaning the stored time is not to be trusted.
func (d *Device) LostPower() (bool, error) {
	return d.readFlag(Time, oscillatorStop)
}

// ReadAlarm reads the alarm registers. Fields read back disabled were not
// part of the match condition; with all four disabled the alarm never fires.
func (d *Device) ReadAlarm() (AlarmSpec, error) {
	var buf [4]byte
	if err := d.readRegister(Alarm, buf[:]); err != nil {
		return AlarmSpec{}, err
	}
	return decodeAlarm(buf), nil
}

// SetAlarm writes the alarm registers. This configures the match condition
// only; use EnableAlarmInterrupt to route the alarm flag to the INT pin.
func (d *Device) SetAlarm(a AlarmSpec) error {
	buf, err := encodeAlarm(a)
	if err != nil {
		return err
	}
	return d.writeRegister(Alarm, buf[:])
}

// AlarmTriggered reports whether the alarm flag is set. The flag stays set
// until cleared with ClearAlarm.
func (d *Device) AlarmTriggered() (bool, error) {
	return d.readFlag(Control2, ctrl2AlarmFlag)
}

// ClearAlarm acknowledges a triggered alarm so it can assert again.
func (d *Device) ClearAlarm() error {
	return d.writeFlag(Control2, ctrl2AlarmFlag, false)
}

// AlarmInterruptEnabled reports whether the alarm flag drives the INT pin.
func (d *Device) AlarmInterruptEnabled() (bool, error) {
	return d.readFlag(Control1, ctrl1AlarmInterrupt)
}

// EnableAlarmInterrupt routes the alarm flag to the INT pin.
func (d *Device) EnableAlarmInterrupt(on bool) error {
	return d.writeFlag(Control1, ctrl1AlarmInterrupt, on)
}

// BatteryLow reports whether the backup battery needs replacement. The flag
// is read-only and valid only with battery low detection enabled.
func (d *Device) BatteryLow() (bool, error) {
	return d.readFlag(Control3, ctrl3BatteryLow)
}

// PowerManagement reads the battery switchover configuration.
func (d *Device) PowerManagement() (PowerManagement, error) {
	v, err := d.readField(fieldPowerManagement)
	return PowerManagement(v), err
}

// SetPowerManagement configures battery switchover and low battery detection.
func (d *Device) SetPowerManagement(pm PowerManagement) error {
	return d.writeField(fieldPowerManagement, int(pm))
}

// HighCapacitance reports the oscillator load capacitance selection:
// true for 12.5 pF, false for 7 pF.
func (d *Device) HighCapacitance() (bool, error) {
	return d.readFlag(Control1, ctrl1CapSel)
}

// SetHighCapacitance selects the oscillator load capacitance. Must match the
// crystal on the board; a mismatch shows up as constant clock drift.
func (d *Device) SetHighCapacitance(on bool) error {
	return d.writeFlag(Control1, ctrl1CapSel, on)
}

// Stopped reports whether the clock divider is frozen.
func (d *Device) Stopped() (bool, error) {
	return d.readFlag(Control1, ctrl1Stop)
}

// SetStopped freezes or releases the clock divider. While stopped the time
// registers hold still and can be written without rollover races.
func (d *Device) SetStopped(on bool) error {
	return d.writeFlag(Control1, ctrl1Stop, on)
}

// Reset triggers a software reset, returning all registers to their power-on
// defaults, then re-enables battery switchover.
func (d *Device) Reset() error {
	if err := d.writeByte(Control1, ctrl1SoftwareReset); err != nil {
		return err
	}
	return d.SetPowerManagement(StandardBatterySwitchover)
}

// Calibration reads the signed oscillator offset, -64..63 LSB.
func (d *Device) Calibration() (int, error) {
	return d.readField(fieldCalibration)
}

// SetCalibration writes the oscillator offset. One LSB is 4.34 ppm in
// two-hour mode and 4.069 ppm in per-minute mode. Values outside -64..63
// return ErrFieldRange.
func (d *Device) SetCalibration(offset int) error {
	return d.writeField(fieldCalibration, offset)
}

// CalibrationPerMinute reports whether the offset is applied every minute
// instead of every two hours.
func (d *Device) CalibrationPerMinute() (bool, error) {
	return d.readFlag(Offset, 1<<7)
}

// SetCalibrationPerMinute selects per-minute offset correction. The two-hour
// default consumes less power.
func (d *Device) SetCalibrationPerMinute(on bool) error {
	return d.writeFlag(Offset, 1<<7, on)
}

// ClockOutFrequency reads the CLKOUT pin configuration.
func (d *Device) ClockOutFrequency() (ClockOutFrequency, error) {
	v, err := d.readField(fieldClockOutFreq)
	return ClockOutFrequency(v), err
}

// SetClockOutFrequency configures the square wave on the CLKOUT pin.
func (d *Device) SetClockOutFrequency(f ClockOutFrequency) error {
	return d.writeField(fieldClockOutFreq, int(f))
}

// readByte reads a single register.
func (d *Device) readByte(reg uint8) (uint8, error) {
	err := d.readRegister(reg, d.r[:1])
	return d.r[0], err
}

// writeByte writes a single register.
func (d *Device) writeByte(reg uint8, b uint8) error {
	d.r[0] = b
	return d.writeRegister(reg, d.r[:1])
}

// readRegister reads len(buf) bytes starting at reg in one bus transaction.
func (d *Device) readRegister(reg uint8, buf []byte) error {
	d.w[0] = reg
	return d.bus.Tx(uint16(d.Address), d.w[:1], buf)
}

// writeRegister writes the bytes starting at reg in one bus transaction.
func (d *Device) writeRegister(reg uint8, buf []byte) error {
	d.w[0] = reg
	n := copy(d.w[1:], buf)
	return d.bus.Tx(uint16(d.Address), d.w[:1+n], nil)
}
