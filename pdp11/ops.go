package pdp11

// Instruction groups built from the ALU primitives: swab, the eight
// single-operand ALU ops (CLR..TST), the four shift/rotate ops, and the six
// dual-operand ops (MOV, CMP, BIT, BIC, BIS, ADD/SUB). Grounded on the
// original core's pdp_swab, pdp_sop, pdp_shift and pdp_dop.

// Single-operand ALU op selectors.
const (
	SopCLR = iota
	SopCOM
	SopINC
	SopDEC
	SopNEG
	SopADC
	SopSBC
	SopTST
)

// swab fetches spec, swaps its two bytes, and writes the result back.
// Always operates on a full word regardless of the instruction's byte bit.
func (c *CPU) swab(spec int) bool {
	y, ok := c.fetch(spec, false, 1)
	if !ok {
		return false
	}
	z, ps := Swap(c.PS, y)
	c.PS = ps
	return c.commit(z, false)
}

// sop realises CLR, COM, INC, DEC, NEG, ADC, SBC and TST on the operand
// named by spec.
func (c *CPU) sop(fn, spec int, b bool) bool {
	y, ok := c.fetch(spec, b, 1)
	if !ok {
		return false
	}

	carry := Get(c.PS, FlagC)
	var z int32
	ps := c.PS

	switch fn {
	case SopCLR:
		z, ps = Add(ps, 0, 0, false, false, b, true)
	case SopCOM:
		z, ps = Add(ps, 0, y, false, true, b, true)
	case SopINC:
		z, ps = Add(ps, y, 0, true, false, b, false)
	case SopDEC:
		z, ps = Add(ps, y, 0, false, true, b, false)
	case SopNEG:
		z, ps = Add(ps, 0, y, true, true, b, true)
	case SopADC:
		z, ps = Add(ps, y, 0, carry, false, b, true)
	case SopSBC:
		z, ps = Add(ps, y, 0, false, carry, b, true)
	case SopTST:
		_, ps = Add(ps, 0, y, false, false, b, true)
		c.PS = ps
		return true
	default:
		return c.trap(VecReserved)
	}

	c.PS = ps
	return c.commit(z, b)
}

// Shift op selectors, in the order of the opcode field (bits 6-7) that
// selects them: ROR 0060, ROL 0061, ASR 0062, ASL 0063.
const (
	ShiftROR = iota
	ShiftROL
	ShiftASR
	ShiftASL
)

// shift realises ASR, ASL, ROR and ROL on the operand named by spec.
func (c *CPU) shift(fn, spec int, b bool) bool {
	y, ok := c.fetch(spec, b, 1)
	if !ok {
		return false
	}

	carry := Get(c.PS, FlagC)
	var z int32
	ps := c.PS

	switch fn {
	case ShiftASR:
		signBit := Bit(y, width(b)-1) != 0
		z, ps = Shr(ps, y, signBit, b)
	case ShiftASL:
		z, ps = Shl(ps, y, false, b)
	case ShiftROR:
		z, ps = Shr(ps, y, carry, b)
	case ShiftROL:
		z, ps = Shl(ps, y, carry, b)
	default:
		return c.trap(VecReserved)
	}

	c.PS = ps
	return c.commit(z, b)
}

// Dual-operand op selectors. 0 is unused: the three-bit opcode field this
// maps from reserves it for the single-operand and no-operand families,
// which are decoded before dop is ever reached.
const (
	DopMOV = iota + 1
	DopCMP
	DopBIT
	DopBIC
	DopBIS
	DopADD // ADD or SUB, selected by topBit
)

// dop realises MOV, CMP, BIT, BIC, BIS and ADD/SUB. For every op but
// ADD/SUB, topBit is the instruction's byte-size bit; for ADD/SUB the
// operand width is always a word and topBit instead selects SUB (1) over
// ADD (0), per the architecture's encoding of that instruction pair.
func (c *CPU) dop(fn, srcSpec, dstSpec int, topBit bool) bool {
	byteMode := topBit && fn != DopADD

	S, ok := c.fetch(srcSpec, byteMode, 0)
	if !ok {
		return false
	}
	D, ok := c.fetch(dstSpec, byteMode, 1)
	if !ok {
		return false
	}

	var z int32
	ps := c.PS

	switch fn {
	case DopMOV:
		z, ps = Or(ps, S, 0, false, byteMode)
	case DopCMP:
		_, ps = Add(ps, S, D, true, true, byteMode, true)
		c.PS = ps
		return true
	case DopBIT:
		_, ps = And(ps, S, D, false, byteMode)
		c.PS = ps
		return true
	case DopBIC:
		z, ps = And(ps, D, S, true, byteMode)
	case DopBIS:
		z, ps = Or(ps, D, S, false, byteMode)
	case DopADD:
		z, ps = Add(ps, D, S, topBit, topBit, false, true)
	default:
		return c.trap(VecReserved)
	}

	c.PS = ps
	return c.commit(z, byteMode)
}
