package pcf8523

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*busSim)(nil)

var errBus = errors.New("bus fault")

// busSim emulates the register file of a PCF8523 behind the Tx wire shape:
// a one-byte write selects the register pointer, longer writes store data,
// reads return consecutive registers. A countdown fault injector lets tests
// fail the Nth transaction.
type busSim struct {
	regs      [0x20]byte
	failAfter int // fail the transaction when the counter hits zero; 0 = never
	txCount   int
}

func newBusSim() *busSim {
	s := &busSim{}
	// power-on defaults relevant to the driver
	s.regs[Control3] = 0xE0       // battery switchover off
	s.regs[Time] = oscillatorStop // set until the time is written
	for i := 0; i < 4; i++ {
		s.regs[Alarm+i] = alarmDisable
	}
	s.regs[TimerAFreqControl] = 0x07
	s.regs[TimerBFreqControl] = 0x07
	return s
}

func (s *busSim) Tx(addr uint16, w, r []byte) error {
	s.txCount++
	if s.failAfter > 0 {
		s.failAfter--
		if s.failAfter == 0 {
			return errBus
		}
	}
	if addr != Address {
		return errors.New("no ack")
	}
	if len(w) == 0 {
		return errors.New("register pointer not set")
	}
	reg := int(w[0])
	for i, b := range w[1:] {
		s.regs[(reg+i)%len(s.regs)] = b
	}
	for i := range r {
		r[i] = s.regs[(reg+i)%len(s.regs)]
	}
	return nil
}

// snapshot returns a copy of the register file for whole-device assertions.
func (s *busSim) snapshot() [0x20]byte {
	return s.regs
}
