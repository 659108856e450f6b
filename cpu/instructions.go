package cpu

import "go6502/mem"

// exec is the signature every operation kernel implements. Target carries
// the addressing-mode resolution for the instruction: either a memory
// address or the accumulator, the zero Target for Implied, or, for
// Relative, the raw displacement byte held in Addr.
type exec func(c *Cpu, t Target)

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ===== Loads =====

func opLDA(c *Cpu, t Target) {
	c.Accumulator = c.Read8(t)
	c.setNZ(c.Accumulator)
}

func opLDX(c *Cpu, t Target) {
	c.X = c.Read8(t)
	c.setNZ(c.X)
}

func opLDY(c *Cpu, t Target) {
	c.Y = c.Read8(t)
	c.setNZ(c.Y)
}

// ===== Stores =====

func opSTA(c *Cpu, t Target) { c.Write8(t, c.Accumulator) }
func opSTX(c *Cpu, t Target) { c.Write8(t, c.X) }
func opSTY(c *Cpu, t Target) { c.Write8(t, c.Y) }

// ===== Transfers =====

func opTAX(c *Cpu, t Target) { c.X = c.Accumulator; c.setNZ(c.X) }
func opTAY(c *Cpu, t Target) { c.Y = c.Accumulator; c.setNZ(c.Y) }
func opTSX(c *Cpu, t Target) { c.X = c.Stack; c.setNZ(c.X) }
func opTXA(c *Cpu, t Target) { c.Accumulator = c.X; c.setNZ(c.Accumulator) }
func opTYA(c *Cpu, t Target) { c.Accumulator = c.Y; c.setNZ(c.Accumulator) }

// TXS copies X into the stack pointer. Unlike every other transfer, it
// leaves N and Z untouched: SP is not a "produced value" in the flag sense.
func opTXS(c *Cpu, t Target) { c.Stack = c.X }

// ===== Stack =====

func opPHA(c *Cpu, t Target) { c.push8(c.Accumulator) }

// PHP always pushes with the break bit and the reserved bit set, regardless
// of the live register's state.
func opPHP(c *Cpu, t Target) { c.push8(c.statusByte(true)) }

func opPLA(c *Cpu, t Target) {
	c.Accumulator = c.pull8()
	c.setNZ(c.Accumulator)
}

// PLP restores P from the pulled byte; bits 4/5 of that byte are dropped.
func opPLP(c *Cpu, t Target) { c.setStatusByte(c.pull8()) }

// ===== Inc/Dec =====

func opINC(c *Cpu, t Target) {
	v := c.Read8(t) + 1
	c.Write8(t, v)
	c.setNZ(v)
}

func opDEC(c *Cpu, t Target) {
	v := c.Read8(t) - 1
	c.Write8(t, v)
	c.setNZ(v)
}

func opINX(c *Cpu, t Target) { c.X++; c.setNZ(c.X) }
func opDEX(c *Cpu, t Target) { c.X--; c.setNZ(c.X) }
func opINY(c *Cpu, t Target) { c.Y++; c.setNZ(c.Y) }
func opDEY(c *Cpu, t Target) { c.Y--; c.setNZ(c.Y) }

// ===== Arithmetic =====

// adc is the shared ADC/SBC kernel: SBC is ADC with the operand inverted,
// since both compute the same carry and overflow formula over
// complementary operands.
func (c *Cpu) adc(operand byte) {
	a := uint16(c.Accumulator)
	m := uint16(operand)
	carry := uint16(boolToByte(c.Flags.Carry))

	sum := a + m + carry
	result := byte(sum)

	c.Flags.Carry = sum > 0xFF
	c.Flags.Overflow = (uint16(c.Accumulator)^sum)&(m^sum)&0x80 != 0

	c.Accumulator = result
	c.setNZ(c.Accumulator)
}

func opADC(c *Cpu, t Target) { c.adc(c.Read8(t)) }
func opSBC(c *Cpu, t Target) { c.adc(c.Read8(t) ^ 0xFF) }

// ===== Logic =====

func opAND(c *Cpu, t Target) { c.Accumulator &= c.Read8(t); c.setNZ(c.Accumulator) }
func opEOR(c *Cpu, t Target) { c.Accumulator ^= c.Read8(t); c.setNZ(c.Accumulator) }
func opORA(c *Cpu, t Target) { c.Accumulator |= c.Read8(t); c.setNZ(c.Accumulator) }

// ===== Shifts / rotates =====

// shiftRotate reads the Target (A or memory), applies a pure 8-bit
// transform that returns the new value and the new carry bit, writes the
// result back, and sets C/N/Z. Every ASL/LSR/ROL/ROR variant shares this
// helper instead of duplicating the read-transform-write dance.
func (c *Cpu) shiftRotate(t Target, f func(in byte, carryIn bool) (out byte, carryOut bool)) {
	in := c.Read8(t)
	out, carryOut := f(in, c.Flags.Carry)
	c.Write8(t, out)
	c.Flags.Carry = carryOut
	c.setNZ(out)
}

func opASL(c *Cpu, t Target) {
	c.shiftRotate(t, func(in byte, _ bool) (byte, bool) {
		return in << 1, in&0x80 != 0
	})
}

func opLSR(c *Cpu, t Target) {
	c.shiftRotate(t, func(in byte, _ bool) (byte, bool) {
		return in >> 1, in&0x01 != 0
	})
}

func opROL(c *Cpu, t Target) {
	c.shiftRotate(t, func(in byte, carryIn bool) (byte, bool) {
		out := (in << 1) | boolToByte(carryIn)
		return out, in&0x80 != 0
	})
}

func opROR(c *Cpu, t Target) {
	c.shiftRotate(t, func(in byte, carryIn bool) (byte, bool) {
		out := (in >> 1) | (boolToByte(carryIn) << 7)
		return out, in&0x01 != 0
	})
}

// ===== Flag ops =====

func opCLC(c *Cpu, t Target) { c.Flags.Carry = false }
func opSEC(c *Cpu, t Target) { c.Flags.Carry = true }
func opCLD(c *Cpu, t Target) { c.Flags.Decimal = false }
func opSED(c *Cpu, t Target) { c.Flags.Decimal = true }
func opCLI(c *Cpu, t Target) { c.Flags.InterruptDisable = false }
func opSEI(c *Cpu, t Target) { c.Flags.InterruptDisable = true }
func opCLV(c *Cpu, t Target) { c.Flags.Overflow = false }

// ===== Compares =====

func compare(c *Cpu, reg byte, operand byte) {
	diff := reg - operand
	c.Flags.Carry = reg >= operand
	c.Flags.Zero = reg == operand
	c.Flags.Negative = diff&0x80 != 0
}

func opCMP(c *Cpu, t Target) { compare(c, c.Accumulator, c.Read8(t)) }
func opCPX(c *Cpu, t Target) { compare(c, c.X, c.Read8(t)) }
func opCPY(c *Cpu, t Target) { compare(c, c.Y, c.Read8(t)) }

// ===== Branches =====

// branch fetches the already-resolved signed displacement out of t.Addr
// (Relative mode stores the raw operand byte there) and, if taken, adds the
// sign-extended displacement to PC with 16-bit wraparound.
func branch(c *Cpu, t Target, taken bool) {
	if !taken {
		return
	}
	displacement := int8(byte(t.Addr))
	c.ProgramCounter = uint16(int32(c.ProgramCounter) + int32(displacement))
}

func opBCC(c *Cpu, t Target) { branch(c, t, !c.Flags.Carry) }
func opBCS(c *Cpu, t Target) { branch(c, t, c.Flags.Carry) }
func opBNE(c *Cpu, t Target) { branch(c, t, !c.Flags.Zero) }
func opBEQ(c *Cpu, t Target) { branch(c, t, c.Flags.Zero) }
func opBPL(c *Cpu, t Target) { branch(c, t, !c.Flags.Negative) }
func opBMI(c *Cpu, t Target) { branch(c, t, c.Flags.Negative) }
func opBVC(c *Cpu, t Target) { branch(c, t, !c.Flags.Overflow) }
func opBVS(c *Cpu, t Target) { branch(c, t, c.Flags.Overflow) }

// ===== Jumps / subroutines =====

// opJMP sets PC to the already-resolved target address. The Absolute and
// Indirect addressing modes both yield the final destination address as
// Target.Addr; the 6502 JMP ($xxFF) page-wrap bug real silicon has is
// intentionally not reproduced here.
func opJMP(c *Cpu, t Target) { c.ProgramCounter = t.Addr }

// JSR pushes the address of the last byte of the JSR instruction (PC - 1,
// where PC already points past both operand bytes) and jumps to the
// resolved target.
func opJSR(c *Cpu, t Target) {
	c.push16(c.ProgramCounter - 1)
	c.ProgramCounter = t.Addr
}

// RTS pulls the return address and adds one, undoing the "minus one" JSR
// pushed.
func opRTS(c *Cpu, t Target) { c.ProgramCounter = c.pull16() + 1 }

// ===== Interrupts =====

// BRK pushes PC+1 (skipping the conventional signature byte that follows
// the BRK opcode), pushes the status with the break bit set, disables
// further IRQs, and jumps through the IRQ/BRK vector.
func opBRK(c *Cpu, t Target) {
	c.push16(c.ProgramCounter + 1)
	c.push8(c.statusByte(true))
	c.Flags.InterruptDisable = true
	c.ProgramCounter = c.Memory.Read16LE(mem.IRQVector)
}

// RTI restores P (dropping bits 4/5), then PC, with no "+1" adjustment
// (unlike RTS).
func opRTI(c *Cpu, t Target) {
	c.setStatusByte(c.pull8())
	c.ProgramCounter = c.pull16()
}

// ===== Miscellaneous =====

func opBIT(c *Cpu, t Target) {
	m := c.Read8(t)
	c.Flags.Zero = c.Accumulator&m == 0
	c.Flags.Negative = m&0x80 != 0
	c.Flags.Overflow = m&0x40 != 0
}

func opNOP(c *Cpu, t Target) {}
