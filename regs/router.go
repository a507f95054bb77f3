package regs

import "imxrt-ccm-go/x/conv"

// Span routes an address range [Base, Base+Size) to a Bus.
type Span struct {
	Base uint32
	Size uint32
	Bus  Bus
}

// Router is a Bus that dispatches each access to the first Span containing it.
// It lets separate windows (CCM and CCM_ANALOG, say) act as one bus.
type Router []Span

func (r Router) find(addr uint32) Bus {
	for _, s := range r {
		if addr >= s.Base && addr-s.Base < s.Size {
			return s.Bus
		}
	}
	panic("regs: no span for address " + conv.Hex32(addr))
}

func (r Router) Read32(addr uint32) uint32 { return r.find(addr).Read32(addr) }

func (r Router) Write32(addr uint32, v uint32) { r.find(addr).Write32(addr, v) }

// Offset is a Bus whose addresses sit Delta above those of the Bus it wraps.
// It places a window mapped at one address (a register image at file offset
// 0, say) where the driver expects the block.
type Offset struct {
	Bus
	Delta uint32
}

func (o Offset) Read32(addr uint32) uint32 { return o.Bus.Read32(addr - o.Delta) }

func (o Offset) Write32(addr uint32, v uint32) { o.Bus.Write32(addr-o.Delta, v) }
