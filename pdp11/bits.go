package pdp11

// Bit extracts bit pos of x (0 or 1).
func Bit(x int32, pos uint) int32 {
	return (x >> pos) & 1
}

// Bits extracts the n-bit unsigned field of x starting at bit pos.
func Bits(x int32, pos, n uint) int32 {
	return (x >> pos) & ^(^int32(0) << n)
}
