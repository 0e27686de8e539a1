package hw

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
)

// flatBus is a 64KB RAM bus, used to test the CPU in isolation.
type flatBus struct {
	mem    [0x10000]uint8
	writes int
}

func (b *flatBus) Read8(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Peek8(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Write8(addr uint16, val uint8) { b.mem[addr] = val; b.writes++ }

func hasPanicked(f func()) (yes bool, msg any) {
	defer func() {
		msg = recover()
		if msg != nil {
			yes = true
		}
	}()
	f()
	return yes, msg
}

// loadCPUWith creates a CPU on a flat bus loaded with the given memory dump
// and resets it.
func loadCPUWith(tb testing.TB, dump string) (*CPU, *flatBus) {
	tb.Helper()

	bus := &flatBus{}
	for _, line := range loadDump(tb, dump) {
		copy(bus.mem[line.off:], line.bytes[:line.len])
	}
	cpu := NewCPU(bus)
	cpu.Reset()
	return cpu, bus
}

func wantMem8(t *testing.T, cpu *CPU, addr uint16, want uint8) {
	t.Helper()

	if got := cpu.Bus.Peek8(addr); got != want {
		t.Errorf("$%04X = %02X want %02X", addr, got, want)
	}
}

func wantMem(t *testing.T, cpu *CPU, dl dumpline) {
	t.Helper()

	mem := []byte{}
	for i := range dl.len {
		mem = append(mem, cpu.Bus.Peek8(dl.off+uint16(i)))
	}

	if !bytes.Equal(mem, dl.bytes[:dl.len]) {
		t.Errorf("mem mismatch at 0x%04x.\ngot:  % x\nwant: % x", dl.off, mem, dl.bytes[:dl.len])
	}
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// runAndCheckState runs the cpu for ncycles and checks the given states,
// provided as name/value pairs.
func runAndCheckState(t *testing.T, cpu *CPU, ncycles int64, states ...any) {
	t.Helper()

	if len(states)%2 != 0 {
		panic("odd number of states")
	}

	checkbool := func(name string, got, want uint8) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=%d, want %d", name, got, want)
		}
	}
	checkuint8 := func(name string, got uint8, want int) {
		t.Helper()
		if got != uint8(want) {
			t.Errorf("got %s=$%02X, want $%02X", name, got, want)
		}
	}
	checkuint16 := func(name string, got uint16, want int) {
		t.Helper()
		if got != uint16(want) {
			t.Errorf("got %s=$%04X, want $%04X", name, got, want)
		}
	}

	if testing.Verbose() {
		cpu.SetTraceOutput(tbwriter{t})
		defer cpu.SetTraceOutput(nil)
	}

	cpu.Run(ncycles)

	for i := 0; i < len(states); i += 2 {
		s := states[i].(string)
		switch {
		case s == "A":
			checkuint8("A", cpu.A, states[i+1].(int))
		case s == "X":
			checkuint8("X", cpu.X, states[i+1].(int))
		case s == "Y":
			checkuint8("Y", cpu.Y, states[i+1].(int))
		case s == "PC":
			checkuint16("PC", cpu.PC, states[i+1].(int))
		case s == "SP":
			checkuint8("SP", cpu.SP, states[i+1].(int))
		case s == "P":
			if got, want := uint8(cpu.P), uint8(states[i+1].(int)); got != want {
				t.Errorf("got P=$%02X(%s), want $%02X(%s)", got, P(got), want, P(want))
			}
		case len(s) > 1 && s[0] == 'P':
			for j := 1; j < len(s); j++ {
				bit := uint8(states[i+1].(int))
				switch s[j] {
				case 'n':
					checkbool("Pn", b2u8(cpu.P.N()), bit)
				case 'v':
					checkbool("Pv", b2u8(cpu.P.V()), bit)
				case 'b':
					checkbool("Pb", b2u8(cpu.P.B()), bit)
				case 'd':
					checkbool("Pd", b2u8(cpu.P.D()), bit)
				case 'i':
					checkbool("Pi", b2u8(cpu.P.I()), bit)
				case 'z':
					checkbool("Pz", b2u8(cpu.P.Z()), bit)
				case 'c':
					checkbool("Pc", b2u8(cpu.P.C()), bit)
				default:
					panic("unknown P bit: " + string(s[j]))
				}
			}
		case s == "mem":
			lines := loadDump(t, states[i+1].(string))
			for _, line := range lines {
				wantMem(t, cpu, line)
			}

		default:
			panic("unknown state: " + s)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

type tbwriter struct {
	tb testing.TB
}

func (w tbwriter) Write(p []byte) (int, error) {
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type dumpline struct {
	off   uint16
	len   uint16 // actual length
	bytes []byte // pow2 sized (padded with 0)
}

// loadDump parses a memory dump made of lines in the form:
//
//	0600: a9 01 8d 00 02
//
// empty lines and lines starting with # are ignored.
func loadDump(tb testing.TB, dump string) []dumpline {
	tb.Helper()

	var lines []dumpline
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed line: %s", line)
		}

		ioff, err := strconv.ParseUint(strings.TrimSpace(off), 16, 16)
		if err != nil {
			tb.Fatalf("malformed offset %s: %s", off, err)
		}
		var buf []byte
		for _, c := range octets {
			if c != ' ' {
				buf = append(buf, byte(c))
			}
		}
		n, err := hex.Decode(buf, buf)
		if err != nil {
			tb.Fatalf("hex decode: %s", err)
		}
		// clear the rest of the buffer
		nbytes := nextpow2(uint64(n))
		for i := uint64(n); i < nbytes; i++ {
			buf[i] = 0
		}
		dl := dumpline{off: uint16(ioff), len: uint16(n), bytes: buf[:nbytes]}
		lines = append(lines, dl)
	}
	if scan.Err() != nil {
		tb.Fatalf("scan error: %s", scan.Err())
	}

	return lines
}

func nextpow2(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}
