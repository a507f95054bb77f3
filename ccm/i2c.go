package ccm

// Default I2C divider: 24 MHz / 3 = 8 MHz, enough for 100 kHz and 400 kHz.
const defaultI2CDivider = 3

// I2CClock is the LPI2C clock root. It runs from the crystal oscillator.
type I2CClock struct{ root }

// ConfigureDivider sets the I2C root divider, in [1, 64], and returns the
// resulting frequency.
//
// All I2C clock gates are off when it returns; use SetClockGate to turn them
// back on.
func (c *I2CClock) ConfigureDivider(div uint32) (uint32, error) {
	return c.configure(div, func() { gatesOff(c.h, AllI2C) })
}

// Configure applies the default divider.
func (c *I2CClock) Configure() (uint32, error) { return c.ConfigureDivider(defaultI2CDivider) }

// ConfigureFrequency picks the smallest divider whose output does not exceed
// hz and returns the frequency actually achieved.
func (c *I2CClock) ConfigureFrequency(hz uint32) (uint32, error) {
	return c.configureFrequency(hz, func() { gatesOff(c.h, AllI2C) })
}

// Frequency returns the I2C root frequency read from hardware.
func (c *I2CClock) Frequency() uint32 { return c.frequency() }

// MaxDivider is the largest divider the variant encodes.
func (c *I2CClock) MaxDivider() uint32 { return c.maxDivider() }

func (c *I2CClock) ClockGate(i Instance[I2C]) (ClockGate, error) {
	return ClockGateOf(c.h, i.Instance())
}

func (c *I2CClock) SetClockGate(i Instance[I2C], g ClockGate) error {
	return SetClockGate(c.h, i.Instance(), g)
}
