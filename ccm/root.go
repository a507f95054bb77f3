package ccm

import (
	"imxrt-ccm-go/regs"
	"imxrt-ccm-go/x/mathx"
)

// root is a clock root with a fixed source and a divide-by-(field+1) divider.
type root struct {
	h    *Handle
	op   string
	reg  regs.Register
	base uint32 // source frequency (Hz)
	sel  uint32 // source selection encoding
}

func (r *root) maxDivider() uint32 { return maxDivider(r.reg.Divider) }

func (r *root) divider() uint32 { return r.reg.RawDivider(r.h.bus) + 1 }

func (r *root) frequency() uint32 { return mathx.DivFreq(r.base, r.divider()) }

// configure validates div, turns the family's gates off, then writes the
// divider and selection. Nothing is written when div is out of range.
func (r *root) configure(div uint32, off func()) (uint32, error) {
	if hi := r.maxDivider(); !mathx.InRange(div, hi) {
		return 0, invalidDivider(r.op+".ConfigureDivider", div, hi)
	}
	off()
	r.reg.Set(r.h.bus, div-1, r.sel)
	return r.frequency(), nil
}

// configureFrequency picks the smallest divider whose output does not exceed hz.
func (r *root) configureFrequency(hz uint32, off func()) (uint32, error) {
	hi := r.maxDivider()
	div, _, ok := mathx.DividerFor(r.base, hz, hi)
	if !ok {
		return 0, invalidDivider(r.op+".ConfigureFrequency", div, hi)
	}
	return r.configure(div, off)
}
