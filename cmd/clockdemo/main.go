//go:build imxrt

// Command clockdemo brings up the CCM on an i.MX RT board: it retunes the
// core, sets the peripheral roots to their defaults, ungates LPUART1 and the
// PIT, then prints the clock tree once a second.
package main

import (
	"time"

	"imxrt-ccm-go/ccm"
	"imxrt-ccm-go/ral"
	"imxrt-ccm-go/x/conv"
)

const (
	armTargetHz = 600_000_000
	uart1Base   = 0x4018_4000
)

func fail(step string, err error) {
	println("[main]", step, "failed:", err.Error())
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	c := ral.New(ccm.VariantUnknown)
	println("[main] ccm up, variant", c.Variant().String())

	arm, ipg := c.ARM().Frequency()
	println("[main] boot clocks: arm", conv.Hz(uint32(arm)), "ipg", conv.Hz(uint32(ipg)))
	if arm, ipg, err := c.ARM().SetFrequency(armTargetHz); err != nil {
		fail("arm retune", err)
	} else {
		println("[main] arm", conv.Hz(uint32(arm)), "ipg", conv.Hz(uint32(ipg)))
	}

	roots := []struct {
		name string
		cfg  func() (uint32, error)
	}{
		{"perclk", c.PerClock().Configure},
		{"uart", c.UART().Configure},
		{"i2c", c.I2C().Configure},
		{"spi", c.SPI().Configure},
	}
	for _, r := range roots {
		hz, err := r.cfg()
		if err != nil {
			fail(r.name, err)
			continue
		}
		println("[main] root", r.name, conv.Hz(hz))
	}

	if u, ok := ral.UARTAt(c.Variant(), uart1Base); ok {
		if err := c.UART().SetClockGate(u, ccm.On); err != nil {
			fail("uart gate", err)
		} else {
			println("[main] gated on", u.String())
		}
	}
	if err := c.PerClock().SetClockGatePIT(ccm.PIT{}, ccm.On); err != nil {
		fail("pit gate", err)
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for range tick.C {
		arm, ipg := c.ARM().Frequency()
		per, ok := c.PerClock().TryFrequency()
		perS := "indeterminate"
		if ok {
			perS = conv.Hz(per)
		}
		println("[main] arm", conv.Hz(uint32(arm)), "ipg", conv.Hz(uint32(ipg)), "perclk", perS)
	}
}
