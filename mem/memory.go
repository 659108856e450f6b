// Package mem implements the linear 65,536-byte address space shared by the
// Cpu. There is no translation and no memory-mapped I/O: every address is
// backed by a plain byte, and every address is both readable and writable.
package mem

const (
	// Size is the total number of addressable bytes.
	Size = 1 << 16

	// ZeroPageStart and ZeroPageEnd bound the zero page (0x0000-0x00FF),
	// reachable with single-byte operands.
	ZeroPageStart = 0x0000
	ZeroPageEnd   = 0x00FF

	// StackPageStart and StackPageEnd bound the stack page (0x0100-0x01FF).
	// The stack grows downward from 0x01FF.
	StackPageStart = 0x0100
	StackPageEnd   = 0x01FF

	// NMIVector, ResetVector and IRQVector are the fixed little-endian
	// 16-bit addresses read on NMI, RESET and IRQ/BRK respectively.
	NMIVector   = 0xFFFA
	ResetVector = 0xFFFC
	IRQVector   = 0xFFFE
)

// A Memory is the Cpu's sole view of the outside world: a flat array of
// 65,536 bytes with no holes. Every address in range is valid; there are no
// error conditions.
type Memory struct {
	cells [Size]byte
}

// Read8 returns the byte stored at addr.
func (m *Memory) Read8(addr uint16) byte {
	return m.cells[addr]
}

// Write8 stores data at addr.
func (m *Memory) Write8(addr uint16, data byte) {
	m.cells[addr] = data
}

// Read16LE reads a little-endian word starting at addr: the low byte lives
// at addr, the high byte at addr+1. Both reads wrap modulo 65,536, so a word
// straddling the top of memory reads its high byte from 0x0000.
func (m *Memory) Read16LE(addr uint16) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Write16LE stores a little-endian word starting at addr.
func (m *Memory) Write16LE(addr uint16, data uint16) {
	m.Write8(addr, byte(data))
	m.Write8(addr+1, byte(data>>8))
}

// Load copies program into memory starting at addr. It is the in-memory
// counterpart of LoadImage and is typically used to seed small test
// programs without going through the filesystem.
func (m *Memory) Load(program []byte, addr uint16) {
	for i, b := range program {
		m.cells[addr+uint16(i)] = b
	}
}

// Slice returns the byte range [start, start+n) for inspection by tests and
// tracers. It does not copy: the slice aliases live memory, so later
// Write8/Load calls are visible through it.
func (m *Memory) Slice(start uint16, n int) []byte {
	return m.cells[start : int(start)+n]
}
