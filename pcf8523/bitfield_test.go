package pcf8523

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWriteFieldReadFieldRoundTrip(t *testing.T) {
	c := qt.New(t)
	sim := newBusSim()
	d := New(sim)

	f := bitField{reg: ClkOutControl, shift: 3, width: 3}
	// surround the field with set bits to catch mask slips
	sim.regs[ClkOutControl] = 0b1100_0111

	for v := 0; v <= 7; v++ {
		before := sim.snapshot()
		c.Assert(d.writeField(f, v), qt.IsNil)
		got, err := d.readField(f)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, v)

		// every bit outside the field is untouched
		after := sim.snapshot()
		c.Assert(after[ClkOutControl]&^(0b111<<3), qt.Equals, before[ClkOutControl]&^(0b111<<3))
		after[ClkOutControl] = before[ClkOutControl]
		c.Assert(after, qt.Equals, before)
	}
}

func TestWriteFieldRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	d := New(newBusSim())

	f := bitField{reg: ClkOutControl, shift: 3, width: 3}
	c.Assert(d.writeField(f, 8), qt.Equals, ErrFieldRange)
	c.Assert(d.writeField(f, -1), qt.Equals, ErrFieldRange)
}

func TestSignedFieldRoundTrip(t *testing.T) {
	c := qt.New(t)
	sim := newBusSim()
	d := New(sim)

	// calibration offset: 7-bit signed at bit 0 of the Offset register
	for _, v := range []int{-64, -1, 0, 1, 63} {
		c.Assert(d.writeField(fieldCalibration, v), qt.IsNil)
		got, err := d.readField(fieldCalibration)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, v)
	}

	// the per-minute schedule bit above the field must survive
	c.Assert(d.writeFlag(Offset, 1<<7, true), qt.IsNil)
	c.Assert(d.writeField(fieldCalibration, -32), qt.IsNil)
	on, err := d.readFlag(Offset, 1<<7)
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.Equals, true)
}

func TestSignedFieldRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	d := New(newBusSim())

	c.Assert(d.writeField(fieldCalibration, 64), qt.Equals, ErrFieldRange)
	c.Assert(d.writeField(fieldCalibration, -65), qt.Equals, ErrFieldRange)
}

func TestFlagsSetAndClearMaskedBitsOnly(t *testing.T) {
	c := qt.New(t)
	sim := newBusSim()
	d := New(sim)

	sim.regs[Control2] = 0b0101_0101
	c.Assert(d.writeFlag(Control2, ctrl2AlarmFlag, true), qt.IsNil)
	c.Assert(sim.regs[Control2], qt.Equals, uint8(0b0101_1101))
	c.Assert(d.writeFlag(Control2, ctrl2AlarmFlag, false), qt.IsNil)
	c.Assert(sim.regs[Control2], qt.Equals, uint8(0b0101_0101))

	on, err := d.readFlag(Control2, ctrl2TimerBFlag)
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.Equals, false)
	on, err = d.readFlag(Control2, ctrl2TimerAFlag)
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.Equals, true)
}

func TestFieldErrorsPropagateUnchanged(t *testing.T) {
	c := qt.New(t)
	sim := newBusSim()
	d := New(sim)

	sim.failAfter = 1 // fail the initial read
	_, err := d.readField(fieldPowerManagement)
	c.Assert(err, qt.Equals, errBus)

	sim.failAfter = 2 // fail the write half of the read-modify-write
	c.Assert(d.writeField(fieldPowerManagement, 0), qt.Equals, errBus)
}
