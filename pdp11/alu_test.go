package pdp11

import "testing"

func TestAddFlags(t *testing.T) {
	tests := []struct {
		name              string
		x, y              int32
		carryIn, invertY  bool
		b                 bool
		wantZ             int32
		wantN, wantZFlag  bool
		wantV, wantC      bool
	}{
		{
			name: "ADD overflow 0x7FFF+1", x: 0x7FFF, y: 1,
			wantZ: -32768, wantN: true, wantV: true,
		},
		{
			name: "SUB producing zero, dst=src=7",
			x: 7, y: 7, carryIn: true, invertY: true,
			wantZ: 0, wantZFlag: true, wantC: true,
		},
		{
			name: "SUB with borrow, dst=0 src=1",
			x: 0, y: 1, carryIn: true, invertY: true,
			wantZ: -1, wantN: true,
		},
		{
			name: "byte add wraps at 8 bits", x: 0xFF, y: 1, b: true,
			wantZ: 0, wantZFlag: true, wantC: true,
		},
	}

	for _, tt := range tests {
		z, ps := Add(0, tt.x, tt.y, tt.carryIn, tt.invertY, tt.b, true)
		if z != tt.wantZ {
			t.Errorf("%s: z = %d, want %d", tt.name, z, tt.wantZ)
		}
		if Get(ps, FlagN) != tt.wantN {
			t.Errorf("%s: N = %v, want %v", tt.name, Get(ps, FlagN), tt.wantN)
		}
		if Get(ps, FlagZ) != tt.wantZFlag {
			t.Errorf("%s: Z = %v, want %v", tt.name, Get(ps, FlagZ), tt.wantZFlag)
		}
		if Get(ps, FlagV) != tt.wantV {
			t.Errorf("%s: V = %v, want %v", tt.name, Get(ps, FlagV), tt.wantV)
		}
		if Get(ps, FlagC) != tt.wantC {
			t.Errorf("%s: C = %v, want %v", tt.name, Get(ps, FlagC), tt.wantC)
		}
	}
}

func TestAddCMask(t *testing.T) {
	// INC (cMask false) must never touch C, even across a wraparound.
	_, ps := Add(uint16(FlagC), 0x7FFF, 0, true, false, false, false)
	if !Get(ps, FlagC) {
		t.Errorf("INC with cMask=false cleared a previously-set C")
	}
	_, ps = Add(0, 0x7FFF, 0, true, false, false, false)
	if Get(ps, FlagC) {
		t.Errorf("INC with cMask=false set C out of nowhere")
	}
}

func TestCmpSubDuality(t *testing.T) {
	// CMP x,y and SUB (y as src, x as dst) compute the same flags.
	x, y := int32(7), int32(12)
	_, cmpPS := Add(0, x, y, true, true, false, true)
	_, subPS := Add(0, x, y, true, true, false, true)
	if cmpPS != subPS {
		t.Errorf("CMP/SUB duality broke: %#x != %#x", cmpPS, subPS)
	}
}

func TestOrAnd(t *testing.T) {
	z, ps := Or(uint16(FlagC)|uint16(FlagV), 0x0F, 0xF0, false, false)
	if z != 0xFF {
		t.Errorf("Or: z = %#x, want 0xff", z)
	}
	if Get(ps, FlagV) {
		t.Errorf("Or: V should be cleared")
	}
	if !Get(ps, FlagC) {
		t.Errorf("Or: C should be preserved")
	}

	z, _ = And(0, 0x0F, 0xF0, false, false)
	if z != 0 {
		t.Errorf("And: z = %#x, want 0", z)
	}

	z, _ = And(0, 0xFF, 0x0F, true, true) // invertY: 0xFF & ^0x0F == 0xF0
	if z != int32(int8(0xF0)) {
		t.Errorf("And invertY: z = %#x, want %#x", z, int32(int8(0xF0)))
	}
}

func TestShr(t *testing.T) {
	z, ps := Shr(0, 1, false, false) // C <- low bit (1), result 0
	if z != 0 || !Get(ps, FlagC) || !Get(ps, FlagZ) {
		t.Errorf("Shr(1): z=%d ps=%#x", z, ps)
	}
	z, ps = Shr(0, 0, true, false) // carry-in becomes new top bit
	if z != -32768 || !Get(ps, FlagN) {
		t.Errorf("Shr with carry-in: z=%d ps=%#x", z, ps)
	}
}

func TestShl(t *testing.T) {
	z, ps := Shl(0, 0x4000, false, false) // bit14 -> bit15, new C = old bit15 = 0
	if z != -32768 {
		t.Errorf("Shl: z = %d, want -32768", z)
	}
	if Get(ps, FlagC) {
		t.Errorf("Shl: C should be 0 (old top bit was 0)")
	}
	z, ps = Shl(0, -32768, false, false) // old bit15=1 shifts out as carry
	if z != 0 || !Get(ps, FlagC) || !Get(ps, FlagZ) {
		t.Errorf("Shl of 0x8000: z=%d ps=%#x", z, ps)
	}
}

func TestSwap(t *testing.T) {
	z, ps := Swap(0, 0x1234)
	if z != 0x3412 {
		t.Errorf("Swap: z = %#x, want 0x3412", z)
	}
	if Get(ps, FlagV) || Get(ps, FlagC) {
		t.Errorf("Swap: V and C must be cleared")
	}
}
