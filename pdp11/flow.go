package pdp11

// Flow control: traps, subroutine linkage and conditional branches.
// Grounded on the original core's pdp_trap, pdp_rti, pdp_jmp, pdp_rts,
// pdp_jsr and pdp_bcc.

// Trap vectors. Each is the address of a two-word (new PC, new PS) pair
// in low memory.
const (
	VecReserved uint16 = 010 // illegal or reserved opcode, JMP/JSR to a register
	VecBPT      uint16 = 014
	VecIOT      uint16 = 020
	VecEMT      uint16 = 030
	VecTrap     uint16 = 034
)

// trap pushes PS then PC and loads the new PC/PS pair from vector. It
// returns false only if one of the four memory operations it performs
// fails; a successful trap always returns true, even though it is the
// core's way of reporting "illegal instruction" to the running program.
func (c *CPU) trap(vector uint16) bool {
	if !c.push(int32(c.PS)) {
		return false
	}
	if !c.push(int32(c.R[PC])) {
		return false
	}
	newPC, ok := c.Mem.Read(vector)
	if !ok {
		return false
	}
	newPS, ok := c.Mem.Read(vector + 2)
	if !ok {
		return false
	}
	c.R[PC] = int16(newPC)
	c.PS = uint16(newPS)
	return true
}

// rti pops PC then PS, the inverse of trap's push order.
func (c *CPU) rti() bool {
	pc, ok := c.pop()
	if !ok {
		return false
	}
	ps, ok := c.pop()
	if !ok {
		return false
	}
	c.R[PC] = int16(pc)
	c.PS = uint16(ps)
	return true
}

// jmp transfers control to the address named by spec. A register specifier
// can't be jumped to (there is no address to jump to), so it traps through
// VecReserved instead of failing outright.
func (c *CPU) jmp(spec int) bool {
	if specMode(spec) == modeReg {
		return c.trap(VecReserved)
	}
	if !c.resolve(spec, false, 0) {
		return false
	}
	c.R[PC] = int16(c.S[0])
	return true
}

// jsr resolves spec, pushes R[link], and sets R[link] to the return
// address; this happens unconditionally, even when spec turns out to name
// a register (which has no address to jump to) and the instruction goes
// on to trap through VecReserved instead of completing the jump.
func (c *CPU) jsr(link, spec int) bool {
	if !c.resolve(spec, false, 0) {
		return false
	}
	wasReg := specMode(spec) == modeReg
	addr := c.S[0]

	if !c.push(c.getReg(link)) {
		return false
	}
	c.setReg(link, c.getReg(PC))

	if wasReg {
		return c.trap(VecReserved)
	}
	c.R[PC] = int16(addr)
	return true
}

// rts reverses jsr: PC <- R[link], R[link] <- pop().
func (c *CPU) rts(link int) bool {
	newPC := c.getReg(link)
	v, ok := c.pop()
	if !ok {
		return false
	}
	c.R[PC] = int16(newPC)
	c.setReg(link, v)
	return true
}

// bcc adds offset (in words) to PC when the branch condition selected by
// sel holds. A branch never traps or fails.
func (c *CPU) bcc(sel int, offset int8) bool {
	if Cond(c.PS, sel) {
		c.R[PC] += int16(offset) * 2
	}
	return true
}
