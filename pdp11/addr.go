package pdp11

// Addressing-mode evaluator. Every dual-, single-operand and flow-control
// instruction resolves its operand(s) through resolve/fetch/commit; this is
// the one place the eight PDP-11 addressing modes are decoded, so every
// side effect (autoincrement, autodecrement, the extension-word read for
// indexed modes) happens exactly once per operand, in address order.
//
// A specifier is the 6-bit (mode, register) pair found in bits 0-5 or 6-11
// of an instruction word: mode occupies the top 3 bits, register the low 3.
const (
	modeReg      = 0 // Rn
	modeDef      = 1 // (Rn)
	modeAutoInc  = 2 // (Rn)+
	modeAutoIncD = 3 // @(Rn)+
	modeAutoDec  = 4 // -(Rn)
	modeAutoDecD = 5 // @-(Rn)
	modeIndex    = 6 // X(Rn)
	modeIndexD   = 7 // @X(Rn)
)

func specMode(spec int) int { return (spec >> 3) & 7 }
func specReg(spec int) int  { return spec & 7 }

// incAmount returns how far R6/R7 move for an autoincrement/autodecrement
// in byte mode; the stack pointer and PC always move by a full word even
// when the operand itself is a byte, so the stack and instruction stream
// stay word-aligned.
func incAmount(reg int, b bool) int32 {
	if b && reg != SP && reg != PC {
		return 1
	}
	return 2
}

// resolve decodes specifier spec, applying any autoincrement/autodecrement
// side effect, and records the result in the CPU's operand buffer at slot.
// It also records the operand as the commit target (c.reg/c.A): for a
// two-operand instruction the destination is always resolved last, so by
// the time commit runs these fields describe the destination regardless of
// which slot it was resolved into. It returns false only when a
// side-effecting memory read needed to decode a deferred or indexed mode
// fails.
func (c *CPU) resolve(spec int, b bool, slot int) bool {
	mode := specMode(spec)
	reg := specReg(spec)

	if mode == modeReg {
		c.S[slot] = int32(reg)
		c.reg = true
		c.A = uint16(reg)
		return true
	}

	var addr uint16
	switch mode {
	case modeDef:
		addr = uint16(c.getReg(reg))

	case modeAutoInc:
		addr = uint16(c.getReg(reg))
		c.setReg(reg, c.getReg(reg)+incAmount(reg, b))

	case modeAutoIncD:
		ptr := uint16(c.getReg(reg))
		c.setReg(reg, c.getReg(reg)+2)
		v, ok := c.Mem.Read(ptr)
		if !ok {
			return false
		}
		addr = uint16(v)

	case modeAutoDec:
		c.setReg(reg, c.getReg(reg)-incAmount(reg, b))
		addr = uint16(c.getReg(reg))

	case modeAutoDecD:
		c.setReg(reg, c.getReg(reg)-2)
		ptr := uint16(c.getReg(reg))
		v, ok := c.Mem.Read(ptr)
		if !ok {
			return false
		}
		addr = uint16(v)

	case modeIndex:
		x, ok := c.next()
		if !ok {
			return false
		}
		addr = uint16(c.getReg(reg) + x)

	case modeIndexD:
		x, ok := c.next()
		if !ok {
			return false
		}
		ptr := uint16(c.getReg(reg) + x)
		v, ok := c.Mem.Read(ptr)
		if !ok {
			return false
		}
		addr = uint16(v)
	}

	c.S[slot] = int32(addr)
	c.reg = false
	c.A = addr
	return true
}

// fetch resolves spec into slot and loads its value; for register mode the
// value is the register's contents, for every other mode it is the word at
// the resolved address. Either is narrowed to a signed byte when b is set.
func (c *CPU) fetch(spec int, b bool, slot int) (int32, bool) {
	mode := specMode(spec)
	reg := specReg(spec)

	if mode == modeReg {
		c.S[slot] = int32(reg)
		c.reg = true
		c.A = uint16(reg)
		v := c.getReg(reg)
		if b {
			v = int32(int8(v))
		}
		return v, true
	}

	if !c.resolve(spec, b, slot) {
		return 0, false
	}
	addr := uint16(c.S[slot])
	v, ok := c.Mem.Read(addr)
	if !ok {
		return 0, false
	}
	if b {
		v = int32(int8(v))
	}
	return v, true
}

// commit writes z back through the destination operand last resolved into
// slot 1 (by dop, and by the single-operand groups), as recorded by reg/A.
func (c *CPU) commit(z int32, b bool) bool {
	size := 2
	if b {
		size = 1
	}
	return c.writeBack(c.reg, c.A, z, size)
}
