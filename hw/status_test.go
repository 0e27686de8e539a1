package hw

import "testing"

func TestPflag(t *testing.T) {
	p := P(0x20)
	p.setI(true)
	if p != 0x24 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x24))
	}

	// Negative and zero flags
	p.checkNZ(0xff)
	if !p.N() || p.Z() {
		t.Errorf("checkNZ(0xff): got P = %s", p)
	}
	p.checkNZ(0x7f)
	if p.N() || p.Z() {
		t.Errorf("checkNZ(0x7f): got P = %s", p)
	}
	p.checkNZ(0)
	if p.N() || !p.Z() {
		t.Errorf("checkNZ(0): got P = %s", p)
	}

	p.setC(true)
	if p.carry() != 1 {
		t.Errorf("carry() = %d, want 1", p.carry())
	}
	p.setC(false)
	if p.carry() != 0 {
		t.Errorf("carry() = %d, want 0", p.carry())
	}
	if p != 0x26 {
		t.Errorf("got P = %q, want %q", p.String(), P(0x26))
	}
}

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}
