// Package ccm drives the i.MX RT Clock Control Module.
//
// It configures the ARM core clock (and the IPG clock derived from it), the
// shared peripheral clock roots (periodic, UART, SPI, I2C), and the two-bit
// clock gate of each peripheral instance. Every operation is a short,
// synchronous sequence of register accesses on a regs.Bus; nothing is cached,
// so frequencies and gates are always re-read from hardware.
//
// A CCM is the single owner of the register block. It is not safe for
// concurrent use; callers sharing it across goroutines or cores must
// serialize access themselves.
package ccm

import (
	"imxrt-ccm-go/errcode"
	"imxrt-ccm-go/regs"
	"imxrt-ccm-go/x/conv"
)

// Config selects the chip variant and diagnostics.
type Config struct {
	// Variant decides which instances exist. Zero means DefaultVariant.
	Variant Variant
	// Trace prints every register write as "[ccm] write <reg> <old> -> <new>".
	Trace bool
}

// Handle is the CCM register block. It also carries the gates of peripherals
// without a clock root of their own (DCDC, DMA, ADC, PWM).
type Handle struct {
	bus     regs.Bus
	variant Variant
	lay     layout
}

// Variant returns the chip variant the handle validates instances against.
func (h *Handle) Variant() Variant { return h.variant }

// CCM bundles the handle and every clock root controller.
type CCM struct {
	handle Handle
	arm    ARMRoot
	perclk PerClock
	uart   UARTClock
	spi    SPIClock
	i2c    I2CClock
}

// New takes ownership of the CCM registers behind bus. The bus must route
// both the CCM block (CCMBase) and CCM_ANALOG (AnalogBase).
func New(bus regs.Bus, cfg Config) *CCM {
	v := cfg.Variant.resolve()
	if cfg.Trace {
		bus = traceBus{bus}
	}
	c := &CCM{handle: Handle{bus: bus, variant: v, lay: layoutFor(v)}}
	h := &c.handle
	c.arm = ARMRoot{h: h}
	c.perclk = PerClock{h: h}
	c.uart = UARTClock{root: root{h: h, op: "uart", reg: h.lay.uart, base: OscillatorHz, sel: selUARTOsc}}
	c.spi = SPIClock{root: root{h: h, op: "spi", reg: h.lay.spi, base: PLL2Hz, sel: selSPIPLL2}}
	c.i2c = I2CClock{root: root{h: h, op: "i2c", reg: h.lay.i2c, base: OscillatorHz, sel: selI2COsc}}
	return c
}

func (c *CCM) Handle() *Handle { return &c.handle }
func (c *CCM) ARM() *ARMRoot { return &c.arm }
func (c *CCM) PerClock() *PerClock { return &c.perclk }
func (c *CCM) UART() *UARTClock { return &c.uart }
func (c *CCM) SPI() *SPIClock { return &c.spi }
func (c *CCM) I2C() *I2CClock { return &c.i2c }
func (c *CCM) Variant() Variant { return c.handle.variant }

// ---------------- Ungrouped clock gates ----------------

// ClockGateDCDC returns the DCDC buck converter gate.
func (h *Handle) ClockGateDCDC(d Instance[DCDC]) (ClockGate, error) {
	return ClockGateOf(h, d.Instance())
}

// SetClockGateDCDC sets the DCDC buck converter gate.
func (h *Handle) SetClockGateDCDC(d Instance[DCDC], g ClockGate) error {
	return SetClockGate(h, d.Instance(), g)
}

// ClockGateDMA returns the DMA controller gate.
func (h *Handle) ClockGateDMA(d Instance[DMA]) (ClockGate, error) {
	return ClockGateOf(h, d.Instance())
}

// SetClockGateDMA sets the DMA controller gate.
func (h *Handle) SetClockGateDMA(d Instance[DMA], g ClockGate) error {
	return SetClockGate(h, d.Instance(), g)
}

func (h *Handle) ClockGateADC(a Instance[ADC]) (ClockGate, error) {
	return ClockGateOf(h, a.Instance())
}

func (h *Handle) SetClockGateADC(a Instance[ADC], g ClockGate) error {
	return SetClockGate(h, a.Instance(), g)
}

func (h *Handle) ClockGatePWM(p Instance[PWM]) (ClockGate, error) {
	return ClockGateOf(h, p.Instance())
}

func (h *Handle) SetClockGatePWM(p Instance[PWM], g ClockGate) error {
	return SetClockGate(h, p.Instance(), g)
}

// gatesOff turns off every instance of a family that exists on the variant.
func gatesOff[P Peripheral](h *Handle, all []P) {
	for _, p := range all {
		if p.Valid(h.variant) {
			writeGate(h.bus, p.Location(), Off)
		}
	}
}

// ---------------- Errors ----------------

func invalidInstance(op, inst string, v Variant) error {
	return errcode.New(errcode.InvalidInstance, op, inst+" not present on "+v.String())
}

func invalidDivider(op string, div, hi uint32) error {
	return errcode.New(errcode.InvalidDivider, op, conv.U32(div)+" not in [1, "+conv.U32(hi)+"]")
}

// ---------------- Tracing ----------------

type traceBus struct{ regs.Bus }

func (t traceBus) Write32(addr uint32, v uint32) {
	old := t.Bus.Read32(addr)
	println("[ccm] write", regName(addr), conv.Hex32(old), "->", conv.Hex32(v))
	t.Bus.Write32(addr, v)
}
