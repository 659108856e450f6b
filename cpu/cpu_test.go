package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, hexBytes string) []byte {
	t.Helper()
	var out []byte
	var hi byte
	nibble := -1
	for _, r := range hexBytes {
		var v byte
		switch {
		case r >= '0' && r <= '9':
			v = byte(r - '0')
		case r >= 'A' && r <= 'F':
			v = byte(r-'A') + 10
		case r >= 'a' && r <= 'f':
			v = byte(r-'a') + 10
		default:
			continue
		}
		if nibble < 0 {
			hi = v
			nibble = 1
		} else {
			out = append(out, hi<<4|v)
			nibble = -1
		}
	}
	return out
}

func newAt(t *testing.T, pc uint16, program string) *Cpu {
	t.Helper()
	c := New()
	c.Memory.Load(assemble(t, program), pc)
	c.SetPC(pc)
	return c
}

func TestLDAImmediate(t *testing.T) {
	c := newAt(t, 0x0200, "A9 01")
	c.Step()
	assert.Equal(t, byte(0x01), c.Accumulator)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
	assert.Equal(t, uint16(0x0202), c.ProgramCounter)
}

func TestLDAZeroPage(t *testing.T) {
	c := newAt(t, 0x0200, "A5 01")
	c.Write(0x01, 0x12)
	c.Step()
	assert.Equal(t, byte(0x12), c.Accumulator)
}

func TestJSRAndRTS(t *testing.T) {
	c := newAt(t, 0x0200, "20 40 42")
	c.Memory.Load(assemble(t, "A9 FF 60"), 0x4240)
	c.Memory.Load(assemble(t, "A9 F0"), 0x0203)

	c.Step() // JSR $4240
	c.Step() // LDA #$FF
	assert.Equal(t, byte(0xFF), c.Accumulator)

	assert.Equal(t, byte(0x02), c.Read(0x01FE))
	assert.Equal(t, byte(0x02), c.Read(0x01FF))

	c.Step() // RTS
	assert.Equal(t, uint16(0x0203), c.ProgramCounter)

	c.Step() // LDA #$F0
	assert.Equal(t, byte(0xF0), c.Accumulator)
}

func TestADCCarryOverflow(t *testing.T) {
	c := newAt(t, 0x0200, "69 00")
	c.Accumulator = 0x7F
	c.Flags.Carry = true
	c.Step()
	assert.Equal(t, byte(0x80), c.Accumulator)
	assert.True(t, c.Flags.Negative)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Zero)
}

func TestSBCIdentity(t *testing.T) {
	c := newAt(t, 0x0200, "E9 FE")
	c.Accumulator = 0xFF
	c.Flags.Carry = false
	c.Step()
	assert.Equal(t, byte(0x00), c.Accumulator)
	assert.True(t, c.Flags.Zero)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Negative)
	assert.False(t, c.Flags.Overflow)
}

func TestCMPEqual(t *testing.T) {
	c := newAt(t, 0x0200, "C9 01")
	c.Accumulator = 0x01
	c.Step()
	assert.True(t, c.Flags.Zero)
	assert.True(t, c.Flags.Carry)
	assert.False(t, c.Flags.Negative)
}

func TestBNEBranchTaken(t *testing.T) {
	c := newAt(t, 0x0200, "D0 01 00 A9 01")
	c.Flags.Zero = false
	c.Step() // BNE, taken, skips the 00 (BRK) byte
	assert.Equal(t, uint16(0x0203), c.ProgramCounter)
	c.Step() // LDA #$01
	assert.Equal(t, byte(0x01), c.Accumulator)
}

func TestPHPSetsBreakAndReservedOnPushedCopy(t *testing.T) {
	c := newAt(t, 0x0200, "08")
	c.Flags.Zero = true
	c.Step()
	assert.Equal(t, byte(0x02|0x30), c.Read(0x01FF))
	assert.Equal(t, byte(0xFE), c.Stack)
}

func TestINXWrapsAndSetsFlags(t *testing.T) {
	c := newAt(t, 0x0200, "E8")
	c.X = 0xFF
	c.Step()
	assert.Equal(t, byte(0x00), c.X)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

func TestDEXWrapsAndSetsFlags(t *testing.T) {
	c := newAt(t, 0x0200, "CA")
	c.X = 0x00
	c.Step()
	assert.Equal(t, byte(0xFF), c.X)
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)
}

func TestBranchOffset0x80JumpsBack128(t *testing.T) {
	c := newAt(t, 0x0300, "B0 80") // BCS, offset -128
	c.Flags.Carry = true
	c.Step()
	assert.Equal(t, uint16(0x0300+2-128), c.ProgramCounter)
}

func TestJSRPushesPCPlusTwoAndRTSReturnsToPCPlusThree(t *testing.T) {
	c := newAt(t, 0x0200, "20 00 03")
	c.Write(0x0300, 0x60) // RTS, at the JSR target
	c.Step()              // JSR $0300
	assert.Equal(t, uint16(0x0300), c.ProgramCounter)
	assert.Equal(t, byte(0x02), c.Read(0x01FE))
	assert.Equal(t, byte(0x02), c.Read(0x01FF))
	c.Step() // RTS
	assert.Equal(t, uint16(0x0203), c.ProgramCounter)
}

func TestBRKAndRTI(t *testing.T) {
	c := newAt(t, 0x0200, "00")
	c.Memory.Write16LE(0xFFFE, 0x9000)
	c.Write(0x9000, 0x40) // RTI
	c.Flags.Zero = true

	c.Step() // BRK
	assert.Equal(t, uint16(0x9000), c.ProgramCounter)
	assert.True(t, c.Flags.InterruptDisable)

	c.Step() // RTI
	assert.Equal(t, uint16(0x0202), c.ProgramCounter)
	assert.True(t, c.Flags.Zero)
}

func TestLoadProgramCopiesToBase0200(t *testing.T) {
	c := New()
	c.LoadProgram([]byte{0xA9, 0x01})
	assert.Equal(t, byte(0xA9), c.Read(0x0200))
	assert.Equal(t, byte(0x01), c.Read(0x0201))
}

func TestUndefinedOpcodeIsNop(t *testing.T) {
	c := newAt(t, 0x0200, "FF")
	c.Accumulator = 0x42
	c.Step()
	assert.Equal(t, byte(0x42), c.Accumulator)
	assert.Equal(t, uint16(0x0201), c.ProgramCounter)
}

func TestStepAggregatesMultiplyProgram(t *testing.T) {
	// Multiply 10 (0x0A) by 3 via repeated addition: LDX #10; STX $00;
	// LDX #3; STX $01; LDY $00; LDA #0; CLC; loop: ADC $01; DEY; BNE
	// loop; STA $02.
	program := "A2 0A 8E 00 00 A2 03 8E 01 00 AC 00 00 A9 00 18 6D 01 00 88 D0 FA 8D 02 00 EA EA EA"
	c := newAt(t, 0x8000, program)
	c.Memory.Write16LE(0xFFFC, 0x8000)

	for i := 0; i < 38; i++ {
		c.Step()
	}

	assert.Equal(t, byte(30), c.Accumulator)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), c.Read(0x0000))
	assert.Equal(t, byte(3), c.Read(0x0001))
	assert.Equal(t, byte(30), c.Read(0x0002))
}
