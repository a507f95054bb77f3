//go:build imxrt

package regs

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO accesses registers directly at their physical address.
type MMIO struct{}

func (MMIO) Read32(addr uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}

func (MMIO) Write32(addr uint32, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Set(v)
}
