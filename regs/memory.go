package regs

import "sync"

// Memory is a sparse register file. Unwritten registers read as zero.
//
// Forced bits read as one regardless of what was written, which stands in for
// status flags that hardware sets on its own (PLL lock, for example).
type Memory struct {
	mu     sync.Mutex
	words  map[uint32]uint32
	forced map[uint32]uint32
	writes int
}

// NewMemory returns an empty register file.
func NewMemory() *Memory {
	return &Memory{words: make(map[uint32]uint32), forced: make(map[uint32]uint32)}
}

func (m *Memory) Read32(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words[addr] | m.forced[addr]
}

func (m *Memory) Write32(addr uint32, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[addr] = v
	m.writes++
}

// Poke sets a register without counting it as a bus write.
func (m *Memory) Poke(addr, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[addr] = v
}

// Force makes bits read as one at addr.
func (m *Memory) Force(addr, bits uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forced[addr] |= bits
}

// Writes returns the number of Write32 calls so far.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
