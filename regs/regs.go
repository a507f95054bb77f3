// Package regs provides 32-bit register access for memory-mapped peripherals.
//
// A Bus reads and writes whole registers at absolute addresses; each single
// Read32/Write32 is assumed atomic. Field and Register describe bit-fields
// inside a register and perform read-modify-write updates through a Bus.
//
// Backends:
//   - Memory: host-side sparse register file (tests, simulation).
//   - Window: a memory-mapped file, e.g. /dev/mem (linux).
//   - MMIO:   volatile access on target (TinyGo, imxrt build tag).
package regs

// Bus is the register access capability used by drivers.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// Field is a bit-field inside a 32-bit register.
type Field struct {
	Offset uint8
	Mask   uint32 // unshifted
}

// NewField describes a field of the given width starting at bit offset.
func NewField(offset, width uint8) Field {
	return Field{Offset: offset, Mask: (1 << width) - 1}
}

// Max is the largest value the field can hold.
func (f Field) Max() uint32 { return f.Mask }

func (f Field) shifted() uint32 { return f.Mask << f.Offset }

// Get extracts the field from a register value.
func (f Field) Get(reg uint32) uint32 { return (reg >> f.Offset) & f.Mask }

// Put returns reg with the field replaced by v. Bits of v beyond the field are dropped.
func (f Field) Put(reg, v uint32) uint32 {
	return (reg &^ f.shifted()) | ((v & f.Mask) << f.Offset)
}

// Read reads the field at addr.
func (f Field) Read(b Bus, addr uint32) uint32 { return f.Get(b.Read32(addr)) }

// Modify clears the field at addr and writes v in its place.
func (f Field) Modify(b Bus, addr, v uint32) {
	b.Write32(addr, f.Put(b.Read32(addr), v))
}

// WriteZero writes v into the field at addr, setting all other bits to zero.
func (f Field) WriteZero(b Bus, addr, v uint32) {
	b.Write32(addr, f.Put(0, v))
}

// Register is a clock-root register holding a divider and a selection field.
type Register struct {
	Addr    uint32
	Divider Field
	Select  Field
}

// Set writes divider and selection in one read-modify-write.
func (r Register) Set(b Bus, divider, selection uint32) {
	v := b.Read32(r.Addr)
	v = r.Divider.Put(v, divider)
	v = r.Select.Put(v, selection)
	b.Write32(r.Addr, v)
}

// RawDivider returns the encoded divider field.
func (r Register) RawDivider(b Bus) uint32 { return r.Divider.Read(b, r.Addr) }

// Selection returns the encoded selection field.
func (r Register) Selection(b Bus) uint32 { return r.Select.Read(b, r.Addr) }
