//go:build linux

package regs

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// DevMem is the physical memory device used for on-target register windows.
const DevMem = "/dev/mem"

// Window is a Bus over a memory-mapped region of a file. With DevMem it
// exposes physical registers; with a plain file it serves a register image.
type Window struct {
	mm   mmap.MMap
	phys uint32  // address of the first register in the window
	off  uintptr // offset of phys within mm
	size uint32
}

// OpenWindow maps size bytes of path starting at physical address phys.
// The mapping is page-aligned; phys itself may be anywhere inside a page.
func OpenWindow(path string, phys uint32, size int) (*Window, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", path, err)
	}
	defer f.Close() // mapping survives the close

	pagemask := ^uint64(unix.Getpagesize() - 1)
	mapAddr := uint64(phys) & pagemask
	length := size + int(uint64(phys)-mapAddr)
	mm, err := mmap.MapRegion(f, length, mmap.RDWR, 0, int64(mapAddr))
	if err != nil {
		return nil, fmt.Errorf("couldn't map %s at %08X (+%d): %w", path, phys, size, err)
	}
	return &Window{mm: mm, phys: phys, off: uintptr(uint64(phys) - mapAddr), size: uint32(size)}, nil
}

// Contains reports whether the 32-bit register at addr lies in the window.
func (w *Window) Contains(addr uint32) bool {
	return addr >= w.phys && addr-w.phys <= w.size-4 && addr%4 == 0
}

func (w *Window) word(addr uint32) *uint32 {
	if !w.Contains(addr) {
		panic(fmt.Sprintf("regs: address %08X outside window %08X+%X", addr, w.phys, w.size))
	}
	return (*uint32)(unsafe.Pointer(&w.mm[w.off+uintptr(addr-w.phys)]))
}

func (w *Window) Read32(addr uint32) uint32 { return atomic.LoadUint32(w.word(addr)) }

func (w *Window) Write32(addr uint32, v uint32) { atomic.StoreUint32(w.word(addr), v) }

// Close flushes and unmaps the window.
func (w *Window) Close() error {
	if err := w.mm.Flush(); err != nil {
		return err
	}
	return w.mm.Unmap()
}
