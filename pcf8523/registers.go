package pcf8523

const (
	Address = 0x68 // I2C address for PCF8523

	// Control and status registers
	Control1 = 0x00 // Control register 1: CAP_SEL, STOP, SR, AIE
	Control2 = 0x01 // Control register 2: timer/alarm flags and interrupt enables
	Control3 = 0x02 // Control register 3: power management, battery low

	// Time and alarm register blocks
	Time  = 0x03 // Time registers starting with seconds; bit 7 of seconds is the oscillator-stop flag
	Alarm = 0x0A // Alarm registers: minute, hour, day, weekday

	Offset        = 0x0E // Calibration offset register
	ClkOutControl = 0x0F // Timer and CLKOUT control register

	TimerAFreqControl = 0x10 // Timer A source clock frequency control
	TimerAValue       = 0x11 // Timer A value (number of clock periods)
	TimerBFreqControl = 0x12 // Timer B source clock frequency control
	TimerBValue       = 0x13 // Timer B value (number of clock periods)
)

// Control1 bits
const (
	ctrl1CapSel         = 1 << 7 // CAP_SEL: high oscillator capacitance
	ctrl1Reserved       = 1 << 6 // unused, reads 0
	ctrl1Stop           = 1 << 4 // STOP: freeze the clock divider
	ctrl1SoftwareReset  = 0x58   // SR trigger group
	ctrl1AlarmInterrupt = 1 << 1 // AIE
)

// Control2 bits
const (
	ctrl2Reserved        = 1 << 7 // unused, reads 0
	ctrl2TimerAFlag      = 1 << 6 // CTAF: timer A elapsed
	ctrl2TimerBFlag      = 1 << 5 // CTBF: timer B elapsed
	ctrl2AlarmFlag       = 1 << 3 // AF: alarm triggered
	ctrl2WatchdogAEnable = 1 << 2 // WTAIE
	ctrl2TimerAEnable    = 1 << 1 // CTAIE
	ctrl2TimerBEnable    = 1 << 0 // CTBIE
)

// Control3 bits
const (
	ctrl3BatteryLow = 1 << 2 // BLF, read-only
)

// Seconds register status bit
const (
	oscillatorStop = 1 << 7 // OS: set when the oscillator stopped since last cleared
)

// Register fields addressed through the generic bit-field accessor. Variant
// differences within the PCF85x3 family stay data here, not code paths.
var (
	fieldPowerManagement = bitField{reg: Control3, shift: 5, width: 3}
	fieldCalibration     = bitField{reg: Offset, shift: 0, width: 7, signed: true}
	fieldClockOutFreq    = bitField{reg: ClkOutControl, shift: 3, width: 3}

	fieldTimerAMode  = bitField{reg: ClkOutControl, shift: 1, width: 2}
	fieldTimerBMode  = bitField{reg: ClkOutControl, shift: 0, width: 1}
	fieldTimerAFreq  = bitField{reg: TimerAFreqControl, shift: 0, width: 3}
	fieldTimerBFreq  = bitField{reg: TimerBFreqControl, shift: 0, width: 3}
	fieldTimerAValue = bitField{reg: TimerAValue, shift: 0, width: 8}
	fieldTimerBValue = bitField{reg: TimerBValue, shift: 0, width: 8}
)

// PowerManagement configures battery switchover, power sources and low
// battery detection (Control3 bits 7-5).
type PowerManagement uint8

const (
	// StandardBatterySwitchover enables switchover in standard mode with
	// battery low detection. Setting the time selects this mode.
	StandardBatterySwitchover PowerManagement = 0b000
	// DirectBatterySwitchover enables switchover in direct mode with battery
	// low detection.
	DirectBatterySwitchover PowerManagement = 0b001
	// BatterySwitchoverOff disables switchover and detection. This is the
	// power-on default; the clock loses the time when main power drops.
	BatterySwitchoverOff PowerManagement = 0b111
)

// ClockOutFrequency selects the square wave emitted on the CLKOUT pin
// (COF[2:0] in the timer/CLKOUT control register).
type ClockOutFrequency uint8

const (
	ClockOut32kHz    ClockOutFrequency = 0b000 // power-on default
	ClockOut16kHz    ClockOutFrequency = 0b001
	ClockOut8kHz     ClockOutFrequency = 0b010
	ClockOut4kHz     ClockOutFrequency = 0b011
	ClockOut1kHz     ClockOutFrequency = 0b100
	ClockOut32Hz     ClockOutFrequency = 0b101
	ClockOut1Hz      ClockOutFrequency = 0b110
	ClockOutDisabled ClockOutFrequency = 0b111
)

// TimerFrequency selects the source clock of a countdown timer (TAQ/TBQ).
// The countdown duration is value/frequency.
type TimerFrequency uint8

const (
	TimerFreq4kHz     TimerFrequency = 0b000 // 4.096 kHz
	TimerFreq64Hz     TimerFrequency = 0b001
	TimerFreq1Hz      TimerFrequency = 0b010
	TimerFreq1_60Hz   TimerFrequency = 0b011 // one tick per minute
	TimerFreq1_3600Hz TimerFrequency = 0b111 // one tick per hour, power-on default
)

// TimerAMode configures timer A (TAC[1:0]). Timer B is a plain on/off bit.
type TimerAMode uint8

const (
	TimerADisabled  TimerAMode = 0b00
	TimerACountdown TimerAMode = 0b01
	TimerAWatchdog  TimerAMode = 0b10
)
