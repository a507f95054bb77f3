package ccm

import (
	"imxrt-ccm-go/errcode"
	"imxrt-ccm-go/regs"
	"imxrt-ccm-go/x/mathx"
)

// ARMClock is the ARM core clock frequency (Hz).
type ARMClock uint32

// IPGClock is the IPG clock frequency (Hz). IPG is the AHB root divided by
// IPG_PODF, so it moves whenever the ARM clock does.
type IPGClock uint32

// ARMRoot controls the ARM core clock and, with it, the IPG clock.
//
// The ARM clock is PLL1 (DIV_SEL * 12 MHz) divided by ARM_PODF and AHB_PODF.
// Reads assume the AHB root runs from PLL1.
type ARMRoot struct{ h *Handle }

const (
	pllStepHz    = OscillatorHz / 2
	pllDivSelMin = 54
	pllDivSelMax = 108

	maxAHBDivider = 5 // used by SetFrequency; the field encodes up to 8
	ipgMaxHz      = 150_000_000

	// Bounds for the handshake and PLL lock polls.
	handshakeSpins = 1 << 16
	pllLockSpins   = 1 << 20
)

type timings struct {
	divSel uint32 // PLL_ARM DIV_SEL
	divARM uint32
	divAHB uint32
	divIPG uint32
}

func (t timings) arm() ARMClock {
	return ARMClock(t.divSel * pllStepHz / t.divARM / t.divAHB)
}

func (t timings) ipg() IPGClock { return IPGClock(uint32(t.arm()) / t.divIPG) }

// targetTimings approximates hz. PLL1 must stay within DIV_SEL 54..108
// (648..1296 MHz), so the dividers grow until hz*divARM*divAHB reaches 648 MHz.
func targetTimings(hz uint32) timings {
	t := timings{divARM: 1, divAHB: 1}
	for uint64(hz)*uint64(t.divARM*t.divAHB) < pllDivSelMin*pllStepHz {
		if t.divARM < maxDivider(fARMPODF) {
			t.divARM++
		} else if t.divAHB < maxAHBDivider {
			t.divAHB++
			t.divARM = 1
		} else {
			break
		}
	}
	divSel := mathx.RoundDiv(uint64(hz)*uint64(t.divARM*t.divAHB), pllStepHz)
	t.divSel = uint32(mathx.Clamp[uint64](divSel, pllDivSelMin, pllDivSelMax))
	t.divIPG = mathx.Min(mathx.CeilDiv(uint32(t.arm()), ipgMaxHz), maxDivider(fIPGPODF))
	return t
}

func (a *ARMRoot) timings() timings {
	b := a.h.bus
	cbcdr := b.Read32(regCBCDR)
	return timings{
		divSel: fPLLDivSel.Read(b, regPLLARM),
		divARM: fARMPODF.Read(b, regCACRR) + 1,
		divAHB: fAHBPODF.Get(cbcdr) + 1,
		divIPG: fIPGPODF.Get(cbcdr) + 1,
	}
}

// Frequency returns the ARM and IPG clock frequencies.
func (a *ARMRoot) Frequency() (ARMClock, IPGClock) {
	t := a.timings()
	return t.arm(), t.ipg()
}

// ConfigureDivider sets ARM_PODF, in [1, 8], and returns the new ARM clock
// together with the IPG clock derived from it.
func (a *ARMRoot) ConfigureDivider(div uint32) (ARMClock, IPGClock, error) {
	if hi := maxDivider(fARMPODF); !mathx.InRange(div, hi) {
		return 0, 0, invalidDivider("arm.ConfigureDivider", div, hi)
	}
	fARMPODF.Modify(a.h.bus, regCACRR, div-1)
	if err := a.waitHandshake("arm.ConfigureDivider"); err != nil {
		return 0, 0, err
	}
	arm, ipg := a.Frequency()
	return arm, ipg, nil
}

// ConfigureIPGDivider sets IPG_PODF, in [1, 4], and returns the IPG clock.
func (a *ARMRoot) ConfigureIPGDivider(div uint32) (IPGClock, error) {
	if hi := maxDivider(fIPGPODF); !mathx.InRange(div, hi) {
		return 0, invalidDivider("arm.ConfigureIPGDivider", div, hi)
	}
	fIPGPODF.Modify(a.h.bus, regCBCDR, div-1)
	_, ipg := a.Frequency()
	return ipg, nil
}

// SetFrequency retunes PLL1 and the ARM, AHB and IPG dividers to approximate
// hz, returning the ARM and IPG clocks actually reached.
//
// While it runs, the AHB root is parked on the 24 MHz oscillator and the core
// executes slowly. Peripherals clocked from IPG see the new IPG rate.
// When it returns, the ARM clock runs on PLL1 again.
//
// Write order: PERIPH_CLK2 source and divider, PERIPH_CLK_SEL (park), PLL_ARM
// restart, ARM_PODF, AHB_PODF, IPG_PODF, PRE_PERIPH_CLK_SEL, PERIPH_CLK_SEL
// (unpark). A timeout mid-sequence leaves the AHB root parked.
func (a *ARMRoot) SetFrequency(hz uint32) (ARMClock, IPGClock, error) {
	const op = "arm.SetFrequency"
	if hz == 0 {
		return 0, 0, errcode.New(errcode.InvalidParams, op, "zero frequency")
	}
	b := a.h.bus

	fPeriphClk2PODF.Modify(b, regCBCDR, 0)
	fPeriphClk2Sel.Modify(b, regCBCMR, selPeriphClk2Osc)
	if err := a.waitHandshake(op); err != nil {
		return 0, 0, err
	}
	fPeriphClkSel.Modify(b, regCBCDR, 1)
	if err := a.waitHandshake(op); err != nil {
		return 0, 0, err
	}

	t := targetTimings(hz)
	if err := a.restartPLL(op, t.divSel); err != nil {
		return 0, 0, err
	}
	steps := []struct {
		f    regs.Field
		addr uint32
		div  uint32
	}{
		{fARMPODF, regCACRR, t.divARM},
		{fAHBPODF, regCBCDR, t.divAHB},
		{fIPGPODF, regCBCDR, t.divIPG},
	}
	for _, s := range steps {
		s.f.Modify(b, s.addr, s.div-1)
		if err := a.waitHandshake(op); err != nil {
			return 0, 0, err
		}
	}

	fPrePeriphSel.Modify(b, regCBCMR, selPrePeriphPLL1)
	fPeriphClkSel.Modify(b, regCBCDR, 0)
	if err := a.waitHandshake(op); err != nil {
		return 0, 0, err
	}
	return t.arm(), t.ipg(), nil
}

// onPLL1 reports whether the AHB root is on PRE_PERIPH_CLK rather than parked
// on PERIPH_CLK2.
func (a *ARMRoot) onPLL1() bool { return fPeriphClkSel.Read(a.h.bus, regCBCDR) == 0 }

func (a *ARMRoot) restartPLL(op string, divSel uint32) error {
	b := a.h.bus
	fPLLPowerdown.WriteZero(b, regPLLARM, 1)
	fPLLDivSel.WriteZero(b, regPLLARM, divSel)
	fPLLEnable.Modify(b, regPLLARM, 1)
	for i := 0; i < pllLockSpins; i++ {
		if b.Read32(regPLLARM)&pllLock != 0 {
			return nil
		}
	}
	return errcode.New(errcode.Timeout, op, "PLL_ARM lock")
}

// waitHandshake polls CDHIPR until every divider and mux handshake is done.
func (a *ARMRoot) waitHandshake(op string) error {
	for i := 0; i < handshakeSpins; i++ {
		if a.h.bus.Read32(regCDHIPR) == 0 {
			return nil
		}
	}
	return errcode.New(errcode.Timeout, op, "CDHIPR handshake")
}
