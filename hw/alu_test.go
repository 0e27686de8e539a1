package hw

import (
	"fmt"
	"testing"
)

func TestADC(t *testing.T) {
	tests := []struct {
		a, m    uint8
		carry   bool
		want    uint8
		wantP   P
		comment string
	}{
		{0x01, 0x01, false, 0x02, 0, ""},
		{0x01, 0x01, true, 0x03, 0, "carry in"},
		{0x7F, 0x01, false, 0x80, Negative | Overflow, "signed overflow"},
		{0xFF, 0x01, false, 0x00, Zero | Carry, "unsigned overflow"},
		{0x80, 0x80, false, 0x00, Zero | Carry | Overflow, "negative overflow"},
		{0x80, 0xFF, false, 0x7F, Carry | Overflow, ""},
		{0xFF, 0xFF, true, 0xFF, Negative | Carry, ""},
		{0x50, 0x50, false, 0xA0, Negative | Overflow, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X+%02X+%t", tt.a, tt.m, tt.carry), func(t *testing.T) {
			cpu := NewCPU(&flatBus{})
			cpu.A = tt.a
			cpu.P = 0
			cpu.P.setC(tt.carry)
			cpu.adc(tt.m)

			if cpu.A != tt.want {
				t.Errorf("A = %02X, want %02X", cpu.A, tt.want)
			}
			if cpu.P != tt.wantP {
				t.Errorf("P = %s, want %s", cpu.P, tt.wantP)
			}
		})
	}
}

func TestSBC(t *testing.T) {
	tests := []struct {
		a, m  uint8
		carry bool // set means no borrow
		want  uint8
		wantP P
	}{
		{0x05, 0x03, true, 0x02, Carry},
		{0x05, 0x05, true, 0x00, Zero | Carry},
		{0x05, 0x06, true, 0xFF, Negative},
		{0x05, 0x03, false, 0x01, Carry},
		{0x80, 0x01, true, 0x7F, Carry | Overflow},
		{0x7F, 0xFF, true, 0x80, Negative | Overflow},
		{0x00, 0x00, false, 0xFF, Negative},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X-%02X-%t", tt.a, tt.m, !tt.carry), func(t *testing.T) {
			// SEC/CLC ; LDA #a ; SBC #m
			sec := uint8(0x38)
			if !tt.carry {
				sec = 0x18
			}
			cpu, _ := loadCPUWith(t, fmt.Sprintf(`
0600: %02x a9 %02x e9 %02x
FFFC: 00 06`, sec, tt.a, tt.m))
			cpu.P = 0
			runAndCheckState(t, cpu, 2+2+2,
				"A", int(tt.want),
				"P", int(tt.wantP),
			)
		})
	}
}

// ADC(m) with carry c, followed by SBC(m) with carry !c, gets back to the
// original accumulator, for every operand pair.
func TestADCSBCRoundTrip(t *testing.T) {
	cpu := NewCPU(&flatBus{})
	for a := range 256 {
		for m := range 256 {
			for _, c := range []bool{false, true} {
				cpu.A = uint8(a)
				cpu.P = 0
				cpu.P.setC(c)
				cpu.adc(uint8(m))

				sum := a + m + int(b2u8(c))
				if cpu.A != uint8(sum) || cpu.P.C() != (sum > 0xFF) {
					t.Fatalf("ADC %02X+%02X+%d: A=%02X C=%t", a, m, b2u8(c), cpu.A, cpu.P.C())
				}
				sa, sm := int(int8(a)), int(int8(m))
				ssum := sa + sm + int(b2u8(c))
				if cpu.P.V() != (ssum < -128 || ssum > 127) {
					t.Fatalf("ADC %02X+%02X+%d: V=%t", a, m, b2u8(c), cpu.P.V())
				}

				cpu.P.setC(!c)
				cpu.adc(^uint8(m))
				if cpu.A != uint8(a) {
					t.Fatalf("A=%02X C=%d: ADC/SBC %02X gives %02X", a, b2u8(c), m, cpu.A)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		reg, m uint8
		wantP  P
	}{
		{0x40, 0x41, Negative},
		{0x40, 0x40, Zero | Carry},
		{0x40, 0x39, Carry},
		{0x00, 0xFF, 0},
		{0xFF, 0x00, Negative | Carry},
	}
	for _, tt := range tests {
		cpu := NewCPU(&flatBus{})
		cpu.P = 0
		cpu.compare(tt.reg, tt.m)
		if cpu.P != tt.wantP {
			t.Errorf("compare(%02X, %02X): P = %s, want %s", tt.reg, tt.m, cpu.P, tt.wantP)
		}
	}
}

func TestUnofficialALU(t *testing.T) {
	tests := []struct {
		name  string
		dump  string
		a, x  uint8
		p     P
		want  []any
		ncyc  int64
		setup func(*CPU)
	}{
		{
			name: "ANC sets carry from bit 7",
			dump: `0600: 0b f0`,
			a:    0x81, ncyc: 2,
			want: []any{"A", 0x80, "P", int(Negative | Carry)},
		},
		{
			name: "ALR",
			dump: `0600: 4b 03`,
			a:    0x83, p: Negative, ncyc: 2,
			want: []any{"A", 0x01, "P", int(Carry)},
		},
		{
			name: "ARR",
			dump: `0600: 6b ff`,
			a:    0xC0, p: Carry, ncyc: 2,
			want: []any{"A", 0xE0, "P", int(Negative | Carry)},
		},
		{
			name: "ARR overflow",
			dump: `0600: 6b ff`,
			a:    0x40, ncyc: 2,
			want: []any{"A", 0x20, "P", int(Overflow)},
		},
		{
			name: "SBX",
			dump: `0600: cb 02`,
			a:    0x0F, x: 0xF3, ncyc: 2,
			want: []any{"X", 0x01, "P", int(Carry)},
		},
		{
			name: "LXA uses magic constant",
			dump: `0600: ab 5a`,
			a:    0x00, ncyc: 2,
			want: []any{"A", 0x5A, "X", 0x5A, "P", 0},
		},
		{
			name: "ANE uses magic constant",
			dump: `0600: 8b ff`,
			a:    0x00, x: 0x81, ncyc: 2,
			want: []any{"A", 0x81, "P", int(Negative)},
		},
		{
			name: "LAX zeropage",
			dump: "0010: 99\n0600: a7 10",
			ncyc: 3,
			want: []any{"A", 0x99, "X", 0x99, "P", int(Negative)},
		},
		{
			name: "SAX",
			dump: `0600: 87 10`,
			a:    0xF0, x: 0x3C, ncyc: 3,
			want: []any{"mem", "0010: 30"},
		},
		{
			name: "DCP",
			dump: "0010: 05\n0600: c7 10",
			a:    0x04, ncyc: 5,
			want: []any{"mem", "0010: 04", "P", int(Zero | Carry)},
		},
		{
			name: "ISB",
			dump: "0010: 01\n0600: e7 10",
			a:    0x05, p: Carry, ncyc: 5,
			want: []any{"mem", "0010: 02", "A", 0x03, "P", int(Carry)},
		},
		{
			name: "SLO",
			dump: "0010: 81\n0600: 07 10",
			a:    0x10, ncyc: 5,
			want: []any{"mem", "0010: 02", "A", 0x12, "P", int(Carry)},
		},
		{
			name: "RLA",
			dump: "0010: 81\n0600: 27 10",
			a:    0xFF, p: Carry, ncyc: 5,
			want: []any{"mem", "0010: 03", "A", 0x03, "P", int(Carry)},
		},
		{
			name: "SRE",
			dump: "0010: 03\n0600: 47 10",
			a:    0x01, ncyc: 5,
			want: []any{"mem", "0010: 01", "A", 0x00, "P", int(Zero | Carry)},
		},
		{
			name: "RRA uses carry from ROR",
			dump: "0010: 03\n0600: 67 10",
			a:    0x10, ncyc: 5,
			want: []any{"mem", "0010: 01", "A", 0x12, "P", 0},
		},
		{
			name: "LAS",
			dump: "0310: 0f\n0600: bb 10 03",
			ncyc: 4,
			setup: func(cpu *CPU) {
				cpu.SP = 0xF3
			},
			want: []any{"A", 0x03, "X", 0x03, "SP", 0x03, "P", 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, tt.dump+"\nFFFC: 00 06")
			cpu.A = tt.a
			cpu.X = tt.x
			cpu.P = tt.p
			if tt.setup != nil {
				tt.setup(cpu)
			}
			runAndCheckState(t, cpu, tt.ncyc, tt.want...)
		})
	}
}
