package hwio

import (
	"fmt"
	"slices"

	"nescore/emu/log"
)

type BankIO8 interface {
	Read8(addr uint16) uint8
	// Peek8 reads a byte without side effects (debugging/tracing).
	Peek8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

type span struct {
	begin, end uint16 // inclusive
	io         BankIO8
}

// Table decodes addresses, forwarding each access to the BankIO8 mapped at
// that address. Mapped ranges can't overlap.
type Table struct {
	Name string

	spans []span // sorted by begin
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

// Map maps io over the [begin, end] range. It panics if that range overlaps
// with an already mapped range.
func (t *Table) Map(begin, end uint16, io BankIO8) {
	if end < begin {
		panic(fmt.Sprintf("hwio.Table %q: invalid range [%04X-%04X]", t.Name, begin, end))
	}
	for _, s := range t.spans {
		if begin <= s.end && s.begin <= end {
			panic(fmt.Sprintf("hwio.Table %q: range [%04X-%04X] overlaps [%04X-%04X]",
				t.Name, begin, end, s.begin, s.end))
		}
	}

	t.spans = append(t.spans, span{begin: begin, end: end, io: io})
	slices.SortFunc(t.spans, func(a, b span) int { return int(a.begin) - int(b.begin) })
}

func (t *Table) MapMem(addr uint16, mem *Mem) {
	log.ModHwIo.DebugZ("mapping mem").
		Hex16("addr", addr).
		Int("size", mem.VSize).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	mem.check()
	t.Map(addr, uint16(int(addr)+mem.VSize-1), mem)
}

func (t *Table) MapDevice(addr uint16, dev *Device) {
	log.ModHwIo.DebugZ("mapping device").
		Hex16("addr", addr).
		Int("size", dev.Size).
		String("area", dev.Name).
		String("bus", t.Name).
		End()

	t.Map(addr, uint16(int(addr)+dev.Size-1), dev)
}

func (t *Table) search(addr uint16) BankIO8 {
	i, found := slices.BinarySearchFunc(t.spans, addr, func(s span, addr uint16) int {
		return int(s.begin) - int(addr)
	})
	if !found {
		i--
	}
	if i >= 0 && addr <= t.spans[i].end {
		return t.spans[i].io
	}
	return nil
}

// Read8 searches in the table for the device mapped at the given address and
// forward the read to it. Unmapped addresses read as 0.
func (t *Table) Read8(addr uint16) uint8 {
	io := t.search(addr)
	if io == nil {
		log.ModHwIo.DebugZ("unmapped Read8").
			String("name", t.Name).
			Hex16("addr", addr).
			End()
		return 0
	}
	return io.Read8(addr)
}

func (t *Table) Peek8(addr uint16) uint8 {
	if io := t.search(addr); io != nil {
		return io.Peek8(addr)
	}
	return 0
}

// Write8 forwards the write to the device mapped at addr. Writes to unmapped
// addresses are dropped.
func (t *Table) Write8(addr uint16, val uint8) {
	io := t.search(addr)
	if io == nil {
		log.ModHwIo.DebugZ("unmapped Write8").
			String("name", t.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	io.Write8(addr, val)
}
