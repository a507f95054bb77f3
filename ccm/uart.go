package ccm

// Default UART divider: the undivided 24 MHz oscillator.
const defaultUARTDivider = 1

// UARTClock is the LPUART clock root. It runs from the crystal oscillator.
type UARTClock struct{ root }

// ConfigureDivider sets the UART root divider, in [1, 64], and returns the
// resulting frequency. All UART gates are off when it returns.
func (c *UARTClock) ConfigureDivider(div uint32) (uint32, error) {
	return c.configure(div, func() { gatesOff(c.h, AllUART) })
}

// Configure applies the default divider.
func (c *UARTClock) Configure() (uint32, error) { return c.ConfigureDivider(defaultUARTDivider) }

// ConfigureFrequency picks the smallest divider whose output does not exceed hz.
func (c *UARTClock) ConfigureFrequency(hz uint32) (uint32, error) {
	return c.configureFrequency(hz, func() { gatesOff(c.h, AllUART) })
}

func (c *UARTClock) Frequency() uint32 { return c.frequency() }

func (c *UARTClock) MaxDivider() uint32 { return c.maxDivider() }

func (c *UARTClock) ClockGate(u Instance[UART]) (ClockGate, error) {
	return ClockGateOf(c.h, u.Instance())
}

func (c *UARTClock) SetClockGate(u Instance[UART], g ClockGate) error {
	return SetClockGate(c.h, u.Instance(), g)
}
