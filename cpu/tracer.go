package cpu

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Trace is the snapshot handed to a Tracer after each completed Step.
type Trace struct {
	Opcode         byte
	Name           string
	Mode           AddressingMode
	ProgramCounter uint16
	Accumulator    byte
	X              byte
	Y              byte
	Stack          byte
	Status         byte
}

// A Tracer observes completed instructions. It is an injectable
// collaborator, not a package-level debug switch: gating diagnostics
// behind a single compiled-in boolean makes tracing impossible to turn on
// selectively or in tests. Cpu.Tracer is nil by default, so tracing costs
// nothing unless a caller opts in.
type Tracer interface {
	Trace(t Trace)
}

// SpewTracer writes a full field dump of every Trace to Out using
// go-spew, one instruction per call. It is useful for diffing whole-machine
// state against a reference trace.
type SpewTracer struct {
	Out io.Writer
}

// Trace implements Tracer.
func (s SpewTracer) Trace(t Trace) {
	spew.Fdump(s.Out, t)
}

// LineTracer writes one short disassembly-style line per instruction,
// mirroring the status line the bubbletea Debugger renders interactively.
type LineTracer struct {
	Out io.Writer
}

// Trace implements Tracer.
func (l LineTracer) Trace(t Trace) {
	fmt.Fprintf(l.Out, "%04X  %-3s  A:%02X X:%02X Y:%02X SP:%02X P:%02X\n",
		t.ProgramCounter, t.Name, t.Accumulator, t.X, t.Y, t.Stack, t.Status)
}
