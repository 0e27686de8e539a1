package hw

// P is the processor status register.
type P uint8

const (
	Carry = 1 << iota
	Zero
	IntDisable
	Decimal
	Break
	Reserved
	Overflow
	Negative
)

func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	s := make([]byte, 8)
	for i := range 8 {
		ibit := (uint8(p) & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}

func (p P) C() bool { return p&Carry != 0 }
func (p P) Z() bool { return p&Zero != 0 }
func (p P) I() bool { return p&IntDisable != 0 }
func (p P) D() bool { return p&Decimal != 0 }
func (p P) B() bool { return p&Break != 0 }
func (p P) U() bool { return p&Reserved != 0 }
func (p P) V() bool { return p&Overflow != 0 }
func (p P) N() bool { return p&Negative != 0 }

func (p *P) writeBit(flag P, v bool) {
	if v {
		*p |= flag
	} else {
		*p &^= flag
	}
}

func (p *P) setC(v bool) { p.writeBit(Carry, v) }
func (p *P) setZ(v bool) { p.writeBit(Zero, v) }
func (p *P) setI(v bool) { p.writeBit(IntDisable, v) }
func (p *P) setD(v bool) { p.writeBit(Decimal, v) }
func (p *P) setV(v bool) { p.writeBit(Overflow, v) }
func (p *P) setN(v bool) { p.writeBit(Negative, v) }

// carry returns the carry flag as 0 or 1.
func (p P) carry() uint8 {
	return uint8(p) & Carry
}

func (p *P) checkNZ(v uint8) {
	p.setN(v&0x80 != 0)
	p.setZ(v == 0)
}

// checkCV sets carry and overflow after x+y+c = sum.
func (p *P) checkCV(x, y uint8, sum uint16) {
	// forward carry or unsigned overflow.
	p.setC(sum > 0xFF)

	// signed overflow, can only happen if the sign of the sum differs
	// from that of both operands.
	v := (uint16(x) ^ sum) & (uint16(y) ^ sum) & 0x80
	p.setV(v != 0)
}
