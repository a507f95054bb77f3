package ccm

import (
	"math/bits"

	"imxrt-ccm-go/errcode"
	"imxrt-ccm-go/regs"
)

// ClockGate is a peripheral clock gate setting.
type ClockGate uint8

const (
	// Off: clock is off in all modes. Stop enter hardware handshake is disabled.
	Off ClockGate = 0b00
	// OnlyRun: clock is on in run mode, off in wait and stop modes.
	OnlyRun ClockGate = 0b01
	// On: clock is on in all modes except stop mode.
	On ClockGate = 0b11
)

const gateReserved = 0b10

func (g ClockGate) Valid() bool { return g == Off || g == OnlyRun || g == On }

func (g ClockGate) String() string {
	switch g {
	case Off:
		return "off"
	case OnlyRun:
		return "only_run"
	case On:
		return "on"
	}
	return "reserved"
}

// Location identifies the CCGR register and the CG fields holding one
// peripheral instance's gate. Some peripherals span two fields; both are
// written together.
type Location struct {
	Reg   uint8  // CCGR index, 0..7
	Gates uint16 // bit n set means field CGn
}

func loc(reg uint8, cg ...uint8) Location {
	l := Location{Reg: reg}
	for _, n := range cg {
		l.Gates |= 1 << n
	}
	return l
}

// Addr returns the absolute address of the CCGR register.
func (l Location) Addr() uint32 { return regCCGR0 + 4*uint32(l.Reg) }

// Overlaps reports whether l and o share at least one gate field.
func (l Location) Overlaps(o Location) bool { return l.Reg == o.Reg && l.Gates&o.Gates != 0 }

func gateField(cg int) regs.Field { return regs.NewField(uint8(2*cg), 2) }

// Locator is implemented by every peripheral instance identifier.
type Locator interface {
	Location() Location
}

// Peripheral is a peripheral instance identifier: a member of one of the
// closed families (I2C, UART, SPI, GPT, PIT, ADC, PWM, DMA, DCDC).
type Peripheral interface {
	comparable
	Locator
	// Valid reports whether the instance exists on the variant.
	Valid(v Variant) bool
	String() string
}

// Instance associates a driver-side peripheral object with its identifier.
// HAL implementers provide it for their own peripheral types; every
// identifier is also its own Instance.
type Instance[P Peripheral] interface {
	Instance() P
}

// SetClockGate sets the gate of p. It fails with errcode.InvalidInstance when
// p does not exist on the handle's variant, and touches no register then.
func SetClockGate[P Peripheral](h *Handle, p P, g ClockGate) error {
	const op = "SetClockGate"
	if !g.Valid() {
		return errcode.New(errcode.InvalidParams, op, "gate value "+g.String())
	}
	if !p.Valid(h.variant) {
		return invalidInstance(op, p.String(), h.variant)
	}
	writeGate(h.bus, p.Location(), g)
	return nil
}

// ClockGateOf returns the gate setting of p.
func ClockGateOf[P Peripheral](h *Handle, p P) (ClockGate, error) {
	const op = "ClockGate"
	if !p.Valid(h.variant) {
		return Off, invalidInstance(op, p.String(), h.variant)
	}
	g := readGate(h.bus, p.Location())
	if g == gateReserved {
		return g, errcode.New(errcode.ReservedGate, op, p.String())
	}
	return g, nil
}

// writeGate updates every field of l in a single read-modify-write.
func writeGate(b regs.Bus, l Location, g ClockGate) {
	addr := l.Addr()
	v := b.Read32(addr)
	for m := l.Gates; m != 0; m &= m - 1 {
		v = gateField(bits.TrailingZeros16(m)).Put(v, uint32(g))
	}
	b.Write32(addr, v)
}

// readGate reads the lowest field of l.
func readGate(b regs.Bus, l Location) ClockGate {
	if l.Gates == 0 {
		return Off
	}
	return ClockGate(gateField(bits.TrailingZeros16(l.Gates)).Read(b, l.Addr()))
}

// Entry is one row of the locator table.
type Entry struct {
	Name string
	Loc  Location
}

// Locations lists the gate location of every known instance, regardless of
// variant.
func Locations() []Entry {
	var out []Entry
	add := func(p interface {
		Locator
		String() string
	}) {
		out = append(out, Entry{Name: p.String(), Loc: p.Location()})
	}
	for _, p := range AllI2C {
		add(p)
	}
	for _, p := range AllUART {
		add(p)
	}
	for _, p := range AllSPI {
		add(p)
	}
	for _, p := range AllGPT {
		add(p)
	}
	for _, p := range AllADC {
		add(p)
	}
	for _, p := range AllPWM {
		add(p)
	}
	add(PIT{})
	add(DMA{})
	add(DCDC{})
	return out
}

// checkLocations panics when two table entries share a gate field.
func checkLocations(es []Entry) {
	for i := range es {
		if es[i].Loc.Gates == 0 || es[i].Loc.Reg >= numCCGR {
			panic("ccm: bad gate location for " + es[i].Name)
		}
		for j := i + 1; j < len(es); j++ {
			if es[i].Loc.Overlaps(es[j].Loc) {
				panic("ccm: gate location collision: " + es[i].Name + " / " + es[j].Name)
			}
		}
	}
}

func init() { checkLocations(Locations()) }
