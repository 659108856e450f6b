package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite8(t *testing.T) {
	var m Memory
	m.Write8(0x1234, 0x42)
	assert.Equal(t, byte(0x42), m.Read8(0x1234))
}

func TestReadWrite16LEOrdering(t *testing.T) {
	var m Memory
	m.Write16LE(0x1000, 0xBEEF)
	assert.Equal(t, byte(0xEF), m.Read8(0x1000))
	assert.Equal(t, byte(0xBE), m.Read8(0x1001))
	assert.Equal(t, uint16(0xBEEF), m.Read16LE(0x1000))
}

func TestRead16LEWrapsAtTopOfAddressSpace(t *testing.T) {
	var m Memory
	m.Write8(0xFFFF, 0x34)
	m.Write8(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), m.Read16LE(0xFFFF))
}

func TestLoadCopiesAtOffset(t *testing.T) {
	var m Memory
	m.Load([]byte{0xA9, 0x01, 0x00}, 0x0600)
	assert.Equal(t, byte(0xA9), m.Read8(0x0600))
	assert.Equal(t, byte(0x01), m.Read8(0x0601))
	assert.Equal(t, byte(0x00), m.Read8(0x0602))
}

func TestSliceAliasesLiveMemory(t *testing.T) {
	var m Memory
	m.Load([]byte{1, 2, 3, 4}, 0x0010)
	s := m.Slice(0x0010, 4)
	assert.Equal(t, []byte{1, 2, 3, 4}, s)
	m.Write8(0x0011, 0xFF)
	assert.Equal(t, byte(0xFF), s[1])
}

func TestVectorConstants(t *testing.T) {
	var m Memory
	m.Write16LE(ResetVector, 0x8000)
	m.Write16LE(NMIVector, 0x9000)
	m.Write16LE(IRQVector, 0xA000)
	assert.Equal(t, uint16(0x8000), m.Read16LE(ResetVector))
	assert.Equal(t, uint16(0x9000), m.Read16LE(NMIVector))
	assert.Equal(t, uint16(0xA000), m.Read16LE(IRQVector))
}
