package ccm

// Default SPI divider: 528 MHz / 5 = 105.6 MHz.
const defaultSPIDivider = 5

// SPIClock is the LPSPI clock root. It runs from PLL2 (528 MHz).
//
// The divider range is [1, 8]; on the 1010 family it is [1, 16].
type SPIClock struct{ root }

// ConfigureDivider sets the SPI root divider and returns the resulting
// frequency. All SPI gates are off when it returns.
func (c *SPIClock) ConfigureDivider(div uint32) (uint32, error) {
	return c.configure(div, func() { gatesOff(c.h, AllSPI) })
}

// Configure applies the default divider.
func (c *SPIClock) Configure() (uint32, error) { return c.ConfigureDivider(defaultSPIDivider) }

// ConfigureFrequency picks the smallest divider whose output does not exceed hz.
func (c *SPIClock) ConfigureFrequency(hz uint32) (uint32, error) {
	return c.configureFrequency(hz, func() { gatesOff(c.h, AllSPI) })
}

func (c *SPIClock) Frequency() uint32 { return c.frequency() }

func (c *SPIClock) MaxDivider() uint32 { return c.maxDivider() }

func (c *SPIClock) ClockGate(s Instance[SPI]) (ClockGate, error) {
	return ClockGateOf(c.h, s.Instance())
}

func (c *SPIClock) SetClockGate(s Instance[SPI], g ClockGate) error {
	return SetClockGate(c.h, s.Instance(), g)
}
