// Package cpu implements the MOS Technology 6502 microprocessor: the
// fetch-decode-execute core, its addressing-mode resolver, and the
// instruction kernels that produce register, memory and flag side effects.
//
// The Cpu has no memory of its own beyond its registers. It interfaces with
// a Memory (see the sibling mem package) that backs the full 64 kB address
// space.
package cpu

import (
	"fmt"
	"io"
	"os"

	"go6502/mem"
)

// Flags packs the independent 1-bit status-register flags that matter to a
// live Cpu. The B flag and the "always 1" reserved bit are not stored here:
// statusByte in flags.go synthesizes them when P is read or pushed to the
// stack (PHP, BRK), and setStatusByte drops them when P is pulled from the
// stack (PLP, RTI).
type Flags struct {
	Negative         bool // N, bit 7
	Overflow         bool // V, bit 6
	InterruptDisable bool // I, bit 2
	Decimal          bool // D, bit 3; stored but never consulted by the ALU
	Zero             bool // Z, bit 1
	Carry            bool // C, bit 0
}

// Cpu is the machine state: registers, flags, and a pointer to the backing
// Memory. A single Cpu is created once and mutated exclusively by Step.
type Cpu struct {
	Memory *mem.Memory

	Flags Flags

	Accumulator byte // A
	X           byte
	Y           byte

	// Stack is SP: always interpreted as an index into page 0x01. The
	// effective stack slot is 0x0100 | Stack. It wraps modulo 256.
	Stack byte

	// ProgramCounter is PC, a 2-byte address that is advanced past every
	// byte consumed during fetch (opcode and operand bytes).
	ProgramCounter uint16

	// Tracer receives a notification after every completed Step. A nil
	// Tracer (the default) disables tracing entirely; it is never a
	// package-level global, only ever an injected collaborator.
	Tracer Tracer
}

// New returns a zeroed Cpu backed by a fresh Memory, with Stack = 0xFF as
// specified for construct(). ProgramCounter is left at zero; callers set it
// explicitly with SetPC or Reset before stepping.
func New() *Cpu {
	return &Cpu{
		Memory: &mem.Memory{},
		Stack:  0xFF,
	}
}

// Read reads one byte from addr.
func (c *Cpu) Read(addr uint16) byte {
	return c.Memory.Read8(addr)
}

// Write writes data to addr.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Memory.Write8(addr, data)
}

// LoadProgram copies program into memory starting at 0x0200, the
// conventional base address for small test programs.
func (c *Cpu) LoadProgram(program []byte) {
	c.Memory.Load(program, 0x0200)
}

// LoadImage reads the raw binary file at path and copies its bytes into
// memory starting at baseOffset: the first byte of the file lands at
// baseOffset, and no bytes of the file are skipped. The convention is
// baseOffset = 0x000A for images built to start at that address, and
// 0x0000 for images that start at address zero.
func (c *Cpu) LoadImage(path string, baseOffset uint16) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cpu: load image %q: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("cpu: load image %q: %w", path, err)
	}
	c.Memory.Load(buf, baseOffset)
	return nil
}

// SetPC sets the program counter to addr. Typical choices are 0x0200 (a
// program loaded with LoadProgram) or the machine's own reset vector.
func (c *Cpu) SetPC(addr uint16) {
	c.ProgramCounter = addr
}

// Reset performs the power-up/reset sequence: registers are cleared, Stack
// is set to 0xFF, and the program counter is loaded from the reset vector
// at 0xFFFC/0xFFFD. It is never called implicitly; callers choose between
// Reset and SetPC.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Stack = 0xFF
	c.Flags = Flags{}
	c.ProgramCounter = c.Memory.Read16LE(mem.ResetVector)
}

// fetchOpcode reads the opcode byte at PC and advances PC past it.
func (c *Cpu) fetchOpcode() byte {
	b := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	return b
}

// Step performs exactly one fetch-decode-execute sequence: it fetches the
// opcode byte at PC, resolves the addressing mode (consuming 0, 1 or 2
// operand bytes and advancing PC past them), and runs the operation kernel.
// Undefined opcodes decode to a no-op by construction of the opcode table.
// Step never returns an error: there are no runtime failure modes defined
// for the core.
func (c *Cpu) Step() {
	opcodeByte := c.fetchOpcode()
	op := opcodeTable[opcodeByte]

	target := c.resolve(op.Mode)
	op.Exec(c, target)

	if c.Tracer != nil {
		c.Tracer.Trace(Trace{
			Opcode:         opcodeByte,
			Name:           op.Name,
			Mode:           op.Mode,
			ProgramCounter: c.ProgramCounter,
			Accumulator:    c.Accumulator,
			X:              c.X,
			Y:              c.Y,
			Stack:          c.Stack,
			Status:         c.statusByte(false),
		})
	}
}
