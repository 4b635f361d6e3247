package pdp11

// Top-level decode. Step fetches one instruction word and retires it.
// Dual-operand instructions (MOV, CMP, BIT, BIC, BIS, ADD/SUB) are
// identified directly by bits 14-12 of the opcode; everything else falls
// into the "other" family, further split first by whether it is a
// conditional branch or EMT/TRAP (identified by the opcode's top byte),
// and otherwise by a 6-bit sub-field occupying bits 11-6.
//
// Step returns false on a host-level memory failure and for HALT, WAIT and
// RESET; an architectural trap (illegal opcode, BPT, IOT, EMT, TRAP) is a
// normal retirement and returns true, same as any other instruction.
func (c *CPU) Step() bool {
	op, ok := c.next()
	if !ok {
		return false
	}
	return c.step(int(op))
}

func (c *CPU) step(op int) bool {
	topBit := op&0x8000 != 0
	fn := (op >> 12) & 0x7
	srcSpec := (op >> 6) & 0x3F
	dstSpec := op & 0x3F

	switch fn {
	case DopMOV, DopCMP, DopBIT, DopBIC, DopBIS, DopADD:
		return c.dop(fn, srcSpec, dstSpec, topBit)
	case 7:
		// fn==7 ("exts") names no instruction in this family at all; it
		// traps unconditionally and must never reach stepOther's sub-decode,
		// whose bits 8-11 would otherwise be misread as a branch, sop or
		// shift opcode.
		return c.trap(VecReserved)
	}
	return c.stepOther(op, topBit)
}

func (c *CPU) stepOther(op int, topBit bool) bool {
	subtop := (op >> 8) & 0xF
	low6 := op & 0x3F

	switch {
	case !topBit && subtop >= 1 && subtop <= 7:
		return c.bcc(subtop-1, int8(op&0xFF))
	case topBit && subtop <= 7:
		return c.bcc(subtop+7, int8(op&0xFF))
	case topBit && subtop == 8:
		return c.trap(VecEMT)
	case topBit && subtop == 9:
		return c.trap(VecTrap)
	}

	family := (op >> 6) & 0x3F

	switch {
	case family == 0:
		// RTI/BPT/IOT are executed here; HALT, WAIT and RESET (system-level,
		// outside this core) report a host-visible failure; every other
		// value in this sub-family is a reserved opcode and traps.
		switch low6 {
		case 2:
			return c.rti()
		case 3:
			return c.trap(VecBPT)
		case 4:
			return c.trap(VecIOT)
		case 0, 1, 5:
			return false
		default:
			return c.trap(VecReserved)
		}

	case family == 1:
		return c.jmp(low6)

	case family == 2:
		switch {
		case low6 < 8:
			return c.rts(low6 & 7)
		case low6 >= 32:
			mask := uint16(low6 & 0xF)
			if low6&0x10 != 0 {
				c.PS = SetCC(c.PS, mask)
			} else {
				c.PS = ClearCC(c.PS, mask)
			}
			return true
		default:
			return c.trap(VecReserved)
		}

	case family == 3:
		return c.swab(low6)

	case family >= 0x20 && family <= 0x27:
		return c.jsr(family&7, low6)

	case family >= 0x28 && family <= 0x2F:
		return c.sop(family&7, low6, topBit)

	case family >= 0x30 && family <= 0x33:
		return c.shift(family&3, low6, topBit)
	}

	// MARK, MFPI, MTPI and the rest of this sub-family are not modeled by
	// this core; like any other reserved opcode, they trap.
	return c.trap(VecReserved)
}
