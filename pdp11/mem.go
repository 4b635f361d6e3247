package pdp11

// Register and stack/PC helpers. Grounded on the original core's pdp_wbg,
// pdp_push, pdp_pop and pdp_next: small inline operations every addressing
// mode and flow-control instruction builds on.

// getReg returns register i's value sign-extended into a word.
func (c *CPU) getReg(i int) int32 {
	return int32(c.R[i])
}

// setReg stores the low 16 bits of v into register i.
func (c *CPU) setReg(i int, v int32) {
	c.R[i] = int16(v)
}

// writeBack stores x through the most recently resolved operand: to
// register a when reg is true, to memory address a otherwise.
func (c *CPU) writeBack(reg bool, a uint16, x int32, size int) bool {
	if reg {
		c.setReg(int(a), x)
		return true
	}
	return c.Mem.Write(a, x, size)
}

// push predecrements R6 by two and writes x as a word at the new SP.
func (c *CPU) push(x int32) bool {
	c.R[SP] -= 2
	return c.Mem.Write(uint16(c.R[SP]), x, 2)
}

// pop reads a word at SP and postincrements R6 by two.
func (c *CPU) pop() (int32, bool) {
	x, ok := c.Mem.Read(uint16(c.R[SP]))
	if !ok {
		return 0, false
	}
	c.R[SP] += 2
	return x, true
}

// next fetches the word at PC and postincrements R7 by two; this is how
// every instruction word and every immediate/absolute extension word is
// read off the instruction stream.
func (c *CPU) next() (int32, bool) {
	x, ok := c.Mem.Read(uint16(c.R[PC]))
	if !ok {
		return 0, false
	}
	c.R[PC] += 2
	return x, true
}
