package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// AddressBus is the view the CPU has of its address space.
type AddressBus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)

	// Peek8 reads a byte without side effects, for tracing.
	Peek8(addr uint16) uint8
}

// Bus decodes the CPU address space:
//
//	$0000-$1FFF  2KB internal RAM, mirrored
//	$2000-$3FFF  PPU registers, mirrored every 8 bytes
//	$4000-$401F  APU and I/O registers
//	$4020-$FFFF  cartridge (mapper)
type Bus struct {
	table *hwio.Table

	RAM *hwio.Mem
	PPU hwio.Device
	APU hwio.Device

	cart   hwio.Device
	mapper Mapper
}

// NewBus creates the CPU bus with the given mapper plugged in. It panics if
// m is nil.
func NewBus(m Mapper) *Bus {
	if m == nil {
		panic("hw.NewBus: nil mapper")
	}

	b := &Bus{
		table:  hwio.NewTable("cpu"),
		RAM:    hwio.NewMem("RAM", 0x800, 0x2000),
		mapper: m,
	}

	// The PPU and APU aren't emulated. Their register windows are inert: reads
	// return 0 and writes are dropped.
	b.PPU = hwio.Device{
		Name:    "PPU",
		Size:    0x2000,
		WriteCb: b.writePPU,
	}
	b.APU = hwio.Device{
		Name:    "APU/IO",
		Size:    0x20,
		WriteCb: b.writeAPU,
	}

	peek := m.Read8
	if p, ok := m.(mapperPeeker); ok {
		peek = p.Peek8
	}
	b.cart = hwio.Device{
		Name:    "cartridge",
		Size:    0x10000 - 0x4020,
		ReadCb:  m.Read8,
		PeekCb:  peek,
		WriteCb: m.Write8,
	}

	b.table.MapMem(0x0000, b.RAM)
	b.table.MapDevice(0x2000, &b.PPU)
	b.table.MapDevice(0x4000, &b.APU)
	b.table.MapDevice(0x4020, &b.cart)
	return b
}

func (b *Bus) writePPU(addr uint16, val uint8) {
	log.ModMem.DebugZ("write to PPU register").
		Int("reg", int(addr&0x7)).
		Hex8("val", val).
		End()
}

func (b *Bus) writeAPU(addr uint16, val uint8) {
	log.ModMem.DebugZ("write to APU/IO register").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}

func (b *Bus) Read8(addr uint16) uint8       { return b.table.Read8(addr) }
func (b *Bus) Peek8(addr uint16) uint8       { return b.table.Peek8(addr) }
func (b *Bus) Write8(addr uint16, val uint8) { b.table.Write8(addr, val) }

// Read16 reads a little-endian 16-bit word. It doesn't wrap at page
// boundaries.
func (b *Bus) Read16(addr uint16) uint16 {
	return hwio.Read16(b.table, addr)
}
