package ccm

import (
	"imxrt-ccm-go/errcode"
	"imxrt-ccm-go/x/mathx"
)

// Selection is the PERCLK source.
type Selection uint8

const (
	SelectIPG Selection = iota
	SelectOscillator
)

func (s Selection) String() string {
	switch s {
	case SelectIPG:
		return "ipg"
	case SelectOscillator:
		return "oscillator"
	}
	return "unknown"
}

// Default periodic clock: 24 MHz / 24 = 1 MHz, one tick per microsecond.
const defaultPerClockDivider = 24

// PerClock is the periodic clock root feeding the GPTs and the PIT.
type PerClock struct{ h *Handle }

func (p *PerClock) maxDivider() uint32 { return maxDivider(p.h.lay.perclk.Divider) }

// ConfigureSelectionDivider selects the source and sets the divider, in
// [1, 64]. The GPT and PIT gates are off when it returns. The returned
// frequency is 0 when it cannot be determined (see TryFrequency).
func (p *PerClock) ConfigureSelectionDivider(sel Selection, div uint32) (uint32, error) {
	const op = "perclock.ConfigureSelectionDivider"
	enc, ok := p.encode(sel)
	if !ok {
		return 0, errcode.New(errcode.InvalidParams, op, "selection "+sel.String())
	}
	if hi := p.maxDivider(); !mathx.InRange(div, hi) {
		return 0, invalidDivider(op, div, hi)
	}
	gatesOff(p.h, AllGPT)
	writeGate(p.h.bus, PIT{}.Location(), Off)
	p.h.lay.perclk.Set(p.h.bus, div-1, enc)
	return p.Frequency(), nil
}

// Configure selects the oscillator with the default divider (1 MHz).
func (p *PerClock) Configure() (uint32, error) {
	return p.ConfigureSelectionDivider(SelectOscillator, defaultPerClockDivider)
}

// ConfigureFrequency selects sel and picks the smallest divider whose output
// does not exceed hz.
func (p *PerClock) ConfigureFrequency(sel Selection, hz uint32) (uint32, error) {
	const op = "perclock.ConfigureFrequency"
	base, ok := p.source(sel)
	if !ok {
		return 0, errcode.New(errcode.InvalidParams, op, "selection "+sel.String())
	}
	hi := p.maxDivider()
	div, _, ok := mathx.DividerFor(base, hz, hi)
	if !ok {
		return 0, invalidDivider(op, div, hi)
	}
	return p.ConfigureSelectionDivider(sel, div)
}

// Selection returns the configured source. ok is false when the register
// holds an encoding this driver does not know.
func (p *PerClock) Selection() (Selection, bool) {
	raw := p.h.lay.perclk.Selection(p.h.bus)
	if int(raw) >= len(p.h.lay.perclkSel) {
		return 0, false
	}
	return p.h.lay.perclkSel[raw], true
}

// TryFrequency returns the periodic clock frequency. ok is false when the
// source is unknown, or is IPG while the AHB root is parked on PERIPH_CLK2.
func (p *PerClock) TryFrequency() (uint32, bool) {
	sel, ok := p.Selection()
	if !ok {
		return 0, false
	}
	base, ok := p.source(sel)
	if !ok {
		return 0, false
	}
	return mathx.DivFreq(base, p.h.lay.perclk.RawDivider(p.h.bus)+1), true
}

// Frequency is TryFrequency with indeterminate states reported as 0.
func (p *PerClock) Frequency() uint32 {
	hz, _ := p.TryFrequency()
	return hz
}

// source returns the frequency feeding the divider for sel.
func (p *PerClock) source(sel Selection) (uint32, bool) {
	switch sel {
	case SelectOscillator:
		return OscillatorHz, true
	case SelectIPG:
		arm := ARMRoot{h: p.h}
		if !arm.onPLL1() {
			return 0, false
		}
		_, ipg := arm.Frequency()
		return uint32(ipg), true
	}
	return 0, false
}

func (p *PerClock) encode(sel Selection) (uint32, bool) {
	for i, s := range p.h.lay.perclkSel {
		if s == sel {
			return uint32(i), true
		}
	}
	return 0, false
}

func (p *PerClock) ClockGateGPT(g Instance[GPT]) (ClockGate, error) {
	return ClockGateOf(p.h, g.Instance())
}

func (p *PerClock) SetClockGateGPT(g Instance[GPT], gate ClockGate) error {
	return SetClockGate(p.h, g.Instance(), gate)
}

func (p *PerClock) ClockGatePIT(t Instance[PIT]) (ClockGate, error) {
	return ClockGateOf(p.h, t.Instance())
}

func (p *PerClock) SetClockGatePIT(t Instance[PIT], gate ClockGate) error {
	return SetClockGate(p.h, t.Instance(), gate)
}
