package cpu

import "go6502/mem"

// push8 writes data to the current stack slot, then decrements Stack
// (wrapping modulo 256, which a plain byte subtraction already gives us).
func (c *Cpu) push8(data byte) {
	c.Write(mem.StackPageStart|uint16(c.Stack), data)
	c.Stack--
}

// pull8 increments Stack (wrapping) and reads the resulting stack slot.
func (c *Cpu) pull8() byte {
	c.Stack++
	return c.Read(mem.StackPageStart | uint16(c.Stack))
}

// push16 pushes a 16-bit value high byte first, so that pull16 (and the
// hardware's own RTS/RTI) can read it back low byte first, matching the
// little-endian convention used everywhere else in memory.
func (c *Cpu) push16(data uint16) {
	c.push8(byte(data >> 8))
	c.push8(byte(data))
}

// pull16 pulls a low byte then a high byte and recombines them.
func (c *Cpu) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(lo) | uint16(hi)<<8
}
