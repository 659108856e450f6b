package cpu

// Opcode names one of the ~150 valid instructions together with the
// addressing mode its operand is fetched under. Decoding is table lookup,
// not a branch on nibbles: the dispatcher is data, not code, and an
// undefined opcode is simply a defaulted row rather than a special case.
type Opcode struct {
	Name string
	Mode AddressingMode
	Exec exec
}

// opcodeTable is the complete 256-entry opcode → (operation, addressing
// mode) mapping. Every documented 6502 opcode maps to its canonical pairing
// per the MOS 6502 datasheet; every other byte value decodes to NOP/Implied,
// a silent no-op.
var opcodeTable [256]Opcode

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = Opcode{Name: "NOP", Mode: Implied, Exec: opNOP}
	}

	set := func(code byte, name string, mode AddressingMode, fn exec) {
		opcodeTable[code] = Opcode{Name: name, Mode: mode, Exec: fn}
	}

	// ADC
	set(0x69, "ADC", Immediate, opADC)
	set(0x65, "ADC", ZeroPage, opADC)
	set(0x75, "ADC", ZeroPageX, opADC)
	set(0x6D, "ADC", Absolute, opADC)
	set(0x7D, "ADC", AbsoluteX, opADC)
	set(0x79, "ADC", AbsoluteY, opADC)
	set(0x61, "ADC", IndexedIndirect, opADC)
	set(0x71, "ADC", IndirectIndexed, opADC)

	// AND
	set(0x29, "AND", Immediate, opAND)
	set(0x25, "AND", ZeroPage, opAND)
	set(0x35, "AND", ZeroPageX, opAND)
	set(0x2D, "AND", Absolute, opAND)
	set(0x3D, "AND", AbsoluteX, opAND)
	set(0x39, "AND", AbsoluteY, opAND)
	set(0x21, "AND", IndexedIndirect, opAND)
	set(0x31, "AND", IndirectIndexed, opAND)

	// ASL
	set(0x0A, "ASL", Accumulator, opASL)
	set(0x06, "ASL", ZeroPage, opASL)
	set(0x16, "ASL", ZeroPageX, opASL)
	set(0x0E, "ASL", Absolute, opASL)
	set(0x1E, "ASL", AbsoluteX, opASL)

	// Branches
	set(0x90, "BCC", Relative, opBCC)
	set(0xB0, "BCS", Relative, opBCS)
	set(0xF0, "BEQ", Relative, opBEQ)
	set(0x30, "BMI", Relative, opBMI)
	set(0xD0, "BNE", Relative, opBNE)
	set(0x10, "BPL", Relative, opBPL)
	set(0x50, "BVC", Relative, opBVC)
	set(0x70, "BVS", Relative, opBVS)

	// BIT
	set(0x24, "BIT", ZeroPage, opBIT)
	set(0x2C, "BIT", Absolute, opBIT)

	// BRK
	set(0x00, "BRK", Implied, opBRK)

	// Clear/set flags
	set(0x18, "CLC", Implied, opCLC)
	set(0xD8, "CLD", Implied, opCLD)
	set(0x58, "CLI", Implied, opCLI)
	set(0xB8, "CLV", Implied, opCLV)
	set(0x38, "SEC", Implied, opSEC)
	set(0xF8, "SED", Implied, opSED)
	set(0x78, "SEI", Implied, opSEI)

	// Compares
	set(0xC9, "CMP", Immediate, opCMP)
	set(0xC5, "CMP", ZeroPage, opCMP)
	set(0xD5, "CMP", ZeroPageX, opCMP)
	set(0xCD, "CMP", Absolute, opCMP)
	set(0xDD, "CMP", AbsoluteX, opCMP)
	set(0xD9, "CMP", AbsoluteY, opCMP)
	set(0xC1, "CMP", IndexedIndirect, opCMP)
	set(0xD1, "CMP", IndirectIndexed, opCMP)

	set(0xE0, "CPX", Immediate, opCPX)
	set(0xE4, "CPX", ZeroPage, opCPX)
	set(0xEC, "CPX", Absolute, opCPX)

	set(0xC0, "CPY", Immediate, opCPY)
	set(0xC4, "CPY", ZeroPage, opCPY)
	set(0xCC, "CPY", Absolute, opCPY)

	// Inc/Dec
	set(0xC6, "DEC", ZeroPage, opDEC)
	set(0xD6, "DEC", ZeroPageX, opDEC)
	set(0xCE, "DEC", Absolute, opDEC)
	set(0xDE, "DEC", AbsoluteX, opDEC)
	set(0xCA, "DEX", Implied, opDEX)
	set(0x88, "DEY", Implied, opDEY)

	set(0xE6, "INC", ZeroPage, opINC)
	set(0xF6, "INC", ZeroPageX, opINC)
	set(0xEE, "INC", Absolute, opINC)
	set(0xFE, "INC", AbsoluteX, opINC)
	set(0xE8, "INX", Implied, opINX)
	set(0xC8, "INY", Implied, opINY)

	// EOR
	set(0x49, "EOR", Immediate, opEOR)
	set(0x45, "EOR", ZeroPage, opEOR)
	set(0x55, "EOR", ZeroPageX, opEOR)
	set(0x4D, "EOR", Absolute, opEOR)
	set(0x5D, "EOR", AbsoluteX, opEOR)
	set(0x59, "EOR", AbsoluteY, opEOR)
	set(0x41, "EOR", IndexedIndirect, opEOR)
	set(0x51, "EOR", IndirectIndexed, opEOR)

	// Jumps / subroutines
	set(0x4C, "JMP", Absolute, opJMP)
	set(0x6C, "JMP", Indirect, opJMP)
	set(0x20, "JSR", Absolute, opJSR)
	set(0x40, "RTI", Implied, opRTI)
	set(0x60, "RTS", Implied, opRTS)

	// Loads
	set(0xA9, "LDA", Immediate, opLDA)
	set(0xA5, "LDA", ZeroPage, opLDA)
	set(0xB5, "LDA", ZeroPageX, opLDA)
	set(0xAD, "LDA", Absolute, opLDA)
	set(0xBD, "LDA", AbsoluteX, opLDA)
	set(0xB9, "LDA", AbsoluteY, opLDA)
	set(0xA1, "LDA", IndexedIndirect, opLDA)
	set(0xB1, "LDA", IndirectIndexed, opLDA)

	set(0xA2, "LDX", Immediate, opLDX)
	set(0xA6, "LDX", ZeroPage, opLDX)
	set(0xB6, "LDX", ZeroPageY, opLDX)
	set(0xAE, "LDX", Absolute, opLDX)
	set(0xBE, "LDX", AbsoluteY, opLDX)

	set(0xA0, "LDY", Immediate, opLDY)
	set(0xA4, "LDY", ZeroPage, opLDY)
	set(0xB4, "LDY", ZeroPageX, opLDY)
	set(0xAC, "LDY", Absolute, opLDY)
	set(0xBC, "LDY", AbsoluteX, opLDY)

	// LSR
	set(0x4A, "LSR", Accumulator, opLSR)
	set(0x46, "LSR", ZeroPage, opLSR)
	set(0x56, "LSR", ZeroPageX, opLSR)
	set(0x4E, "LSR", Absolute, opLSR)
	set(0x5E, "LSR", AbsoluteX, opLSR)

	// NOP (explicit, documented opcode; undocumented bytes default to NOP too)
	set(0xEA, "NOP", Implied, opNOP)

	// ORA
	set(0x09, "ORA", Immediate, opORA)
	set(0x05, "ORA", ZeroPage, opORA)
	set(0x15, "ORA", ZeroPageX, opORA)
	set(0x0D, "ORA", Absolute, opORA)
	set(0x1D, "ORA", AbsoluteX, opORA)
	set(0x19, "ORA", AbsoluteY, opORA)
	set(0x01, "ORA", IndexedIndirect, opORA)
	set(0x11, "ORA", IndirectIndexed, opORA)

	// Stack
	set(0x48, "PHA", Implied, opPHA)
	set(0x08, "PHP", Implied, opPHP)
	set(0x68, "PLA", Implied, opPLA)
	set(0x28, "PLP", Implied, opPLP)

	// ROL / ROR
	set(0x2A, "ROL", Accumulator, opROL)
	set(0x26, "ROL", ZeroPage, opROL)
	set(0x36, "ROL", ZeroPageX, opROL)
	set(0x2E, "ROL", Absolute, opROL)
	set(0x3E, "ROL", AbsoluteX, opROL)

	set(0x6A, "ROR", Accumulator, opROR)
	set(0x66, "ROR", ZeroPage, opROR)
	set(0x76, "ROR", ZeroPageX, opROR)
	set(0x6E, "ROR", Absolute, opROR)
	set(0x7E, "ROR", AbsoluteX, opROR)

	// SBC
	set(0xE9, "SBC", Immediate, opSBC)
	set(0xE5, "SBC", ZeroPage, opSBC)
	set(0xF5, "SBC", ZeroPageX, opSBC)
	set(0xED, "SBC", Absolute, opSBC)
	set(0xFD, "SBC", AbsoluteX, opSBC)
	set(0xF9, "SBC", AbsoluteY, opSBC)
	set(0xE1, "SBC", IndexedIndirect, opSBC)
	set(0xF1, "SBC", IndirectIndexed, opSBC)

	// Stores
	set(0x85, "STA", ZeroPage, opSTA)
	set(0x95, "STA", ZeroPageX, opSTA)
	set(0x8D, "STA", Absolute, opSTA)
	set(0x9D, "STA", AbsoluteX, opSTA)
	set(0x99, "STA", AbsoluteY, opSTA)
	set(0x81, "STA", IndexedIndirect, opSTA)
	set(0x91, "STA", IndirectIndexed, opSTA)

	set(0x86, "STX", ZeroPage, opSTX)
	set(0x96, "STX", ZeroPageY, opSTX)
	set(0x8E, "STX", Absolute, opSTX)

	set(0x84, "STY", ZeroPage, opSTY)
	set(0x94, "STY", ZeroPageX, opSTY)
	set(0x8C, "STY", Absolute, opSTY)

	// Transfers
	set(0xAA, "TAX", Implied, opTAX)
	set(0xA8, "TAY", Implied, opTAY)
	set(0xBA, "TSX", Implied, opTSX)
	set(0x8A, "TXA", Implied, opTXA)
	set(0x9A, "TXS", Implied, opTXS)
	set(0x98, "TYA", Implied, opTYA)
}
