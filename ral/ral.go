// Package ral ties the CCM driver to the chip's register map: it names the
// clock roots, builds the CCM at its fixed address on target, and maps a
// peripheral's register block base address to the instance whose clock gate
// feeds it.
//
// HAL code that only knows a peripheral by its base address (as most TinyGo
// machine packages do) can therefore gate it:
//
//	if u, ok := ral.UARTAt(c.Variant(), 0x4018_4000); ok {
//		c.UART().SetClockGate(u, ccm.On)
//	}
package ral

import (
	"imxrt-ccm-go/ccm"
	"imxrt-ccm-go/regs"
)

// Aliases so HAL code can reach the clock roots through ral alone.
type (
	CCM       = ccm.CCM
	Handle    = ccm.Handle
	ARMRoot   = ccm.ARMRoot
	PerClock  = ccm.PerClock
	UARTClock = ccm.UARTClock
	SPIClock  = ccm.SPIClock
	I2CClock  = ccm.I2CClock
)

// From builds a CCM over two separately provided register blocks: block
// addresses CCM registers at CCMBase, analog addresses CCM_ANALOG at
// AnalogBase. Use regs.Offset for blocks mapped elsewhere.
func From(block, analog regs.Bus, cfg ccm.Config) *CCM {
	return ccm.New(regs.Router{
		{Base: ccm.CCMBase, Size: ccm.CCMSize, Bus: block},
		{Base: ccm.AnalogBase, Size: ccm.AnalogSize, Bus: analog},
	}, cfg)
}

// blocks lists peripheral base addresses, indexed by instance number - 1.
type blocks struct {
	i2c, uart, spi, gpt, adc, pwm []uintptr
	pit, dma, dcdc                uintptr
}

var imxrt1060 = blocks{
	i2c:  []uintptr{0x403F_0000, 0x403F_4000, 0x403F_8000, 0x403F_C000},
	uart: []uintptr{0x4018_4000, 0x4018_8000, 0x4018_C000, 0x4019_0000, 0x4019_4000, 0x4019_8000, 0x4019_C000, 0x401A_0000},
	spi:  []uintptr{0x4039_4000, 0x4039_8000, 0x4039_C000, 0x403A_0000},
	gpt:  []uintptr{0x401E_C000, 0x401F_0000},
	adc:  []uintptr{0x400C_4000, 0x400C_8000},
	pwm:  []uintptr{0x403D_C000, 0x403E_0000, 0x403E_4000, 0x403E_8000},
	pit:  0x4008_4000,
	dma:  0x400E_8000,
	dcdc: 0x4008_0000,
}

var imxrt1010 = blocks{
	i2c:  []uintptr{0x401A_4000, 0x401A_8000},
	uart: []uintptr{0x4018_4000, 0x4018_8000, 0x4018_C000, 0x4019_0000},
	spi:  []uintptr{0x4019_4000, 0x4019_8000},
	gpt:  []uintptr{0x401E_C000, 0x401F_0000},
	adc:  []uintptr{0x400C_4000},
	pwm:  []uintptr{0x401C_C000},
	pit:  0x4008_4000,
	dma:  0x400E_8000,
	dcdc: 0x4008_0000,
}

// blocksFor returns the address map of v. Conservative has none, because the
// families disagree on where blocks live.
func blocksFor(v ccm.Variant) (*blocks, bool) {
	switch v {
	case ccm.IMXRT1060:
		return &imxrt1060, true
	case ccm.IMXRT1010:
		return &imxrt1010, true
	}
	return nil, false
}

func at[P ~uint8](v ccm.Variant, pick func(*blocks) []uintptr, base uintptr) (P, bool) {
	b, ok := blocksFor(v)
	if !ok {
		return 0, false
	}
	for i, a := range pick(b) {
		if a == base {
			return P(i + 1), true
		}
	}
	return 0, false
}

// I2CAt returns the LPI2C instance whose registers start at base.
func I2CAt(v ccm.Variant, base uintptr) (ccm.I2C, bool) {
	return at[ccm.I2C](v, func(b *blocks) []uintptr { return b.i2c }, base)
}

// UARTAt returns the LPUART instance whose registers start at base.
func UARTAt(v ccm.Variant, base uintptr) (ccm.UART, bool) {
	return at[ccm.UART](v, func(b *blocks) []uintptr { return b.uart }, base)
}

func SPIAt(v ccm.Variant, base uintptr) (ccm.SPI, bool) {
	return at[ccm.SPI](v, func(b *blocks) []uintptr { return b.spi }, base)
}

func GPTAt(v ccm.Variant, base uintptr) (ccm.GPT, bool) {
	return at[ccm.GPT](v, func(b *blocks) []uintptr { return b.gpt }, base)
}

func ADCAt(v ccm.Variant, base uintptr) (ccm.ADC, bool) {
	return at[ccm.ADC](v, func(b *blocks) []uintptr { return b.adc }, base)
}

func PWMAt(v ccm.Variant, base uintptr) (ccm.PWM, bool) {
	return at[ccm.PWM](v, func(b *blocks) []uintptr { return b.pwm }, base)
}

// GateAt names the clock gate feeding the block at base, for diagnostics.
func GateAt(v ccm.Variant, base uintptr) (string, bool) {
	if n, ok := I2CAt(v, base); ok {
		return n.String(), true
	}
	if n, ok := UARTAt(v, base); ok {
		return n.String(), true
	}
	if n, ok := SPIAt(v, base); ok {
		return n.String(), true
	}
	if n, ok := GPTAt(v, base); ok {
		return n.String(), true
	}
	if n, ok := ADCAt(v, base); ok {
		return n.String(), true
	}
	if n, ok := PWMAt(v, base); ok {
		return n.String(), true
	}
	b, ok := blocksFor(v)
	if !ok {
		return "", false
	}
	switch base {
	case b.pit:
		return ccm.PIT{}.String(), true
	case b.dma:
		return ccm.DMA{}.String(), true
	case b.dcdc:
		return ccm.DCDC{}.String(), true
	}
	return "", false
}
