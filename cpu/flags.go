package cpu

import "go6502/mask"

// Status-register bit positions, 1-indexed from the most significant bit,
// matching the convention used by the mask package.
const (
	bitN = mask.I1 // 0x80 Negative
	bitV = mask.I2 // 0x40 Overflow
	bitU = mask.I3 // 0x20 Reserved, reads as 1 when pushed
	bitB = mask.I4 // 0x10 Break, meaningful only on pushed copies
	bitD = mask.I5 // 0x08 Decimal
	bitI = mask.I6 // 0x04 Interrupt disable
	bitZ = mask.I7 // 0x02 Zero
	bitC = mask.I8 // 0x01 Carry
)

// setNZ centralizes the N/Z update every value-producing instruction needs:
// Z is set iff result is zero, N mirrors bit 7 of result.
func (c *Cpu) setNZ(result byte) {
	c.Flags.Zero = result == 0
	c.Flags.Negative = result&0x80 != 0
}

// statusByte packs the live Flags into a single byte matching the classic
// NVUBDIZC Processor Status layout. The reserved bit always reads 1. The
// B flag is never stored on the live register; it is synthesized here only
// when withBreak is true, matching PHP and BRK (which push B=1) versus a
// plain read of the status register (B=0).
func (c *Cpu) statusByte(withBreak bool) byte {
	var p byte
	if c.Flags.Negative {
		p = mask.Set(p, bitN, 1)
	}
	if c.Flags.Overflow {
		p = mask.Set(p, bitV, 1)
	}
	p = mask.Set(p, bitU, 1)
	if withBreak {
		p = mask.Set(p, bitB, 1)
	}
	if c.Flags.Decimal {
		p = mask.Set(p, bitD, 1)
	}
	if c.Flags.InterruptDisable {
		p = mask.Set(p, bitI, 1)
	}
	if c.Flags.Zero {
		p = mask.Set(p, bitZ, 1)
	}
	if c.Flags.Carry {
		p = mask.Set(p, bitC, 1)
	}
	return p
}

// setStatusByte restores Flags from a byte pulled off the stack (PLP, RTI).
// Bits 0-3, 6 and 7 are copied into Flags; bits 4 and 5 (B and reserved)
// are not read, since Flags has no field for them. statusByte synthesizes
// them again whenever P is read or pushed.
func (c *Cpu) setStatusByte(p byte) {
	c.Flags.Negative = mask.IsSet(p, bitN)
	c.Flags.Overflow = mask.IsSet(p, bitV)
	c.Flags.Decimal = mask.IsSet(p, bitD)
	c.Flags.InterruptDisable = mask.IsSet(p, bitI)
	c.Flags.Zero = mask.IsSet(p, bitZ)
	c.Flags.Carry = mask.IsSet(p, bitC)
}
