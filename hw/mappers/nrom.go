package mappers

import (
	"nescore/hw"
	"nescore/hw/hwio"
)

var NROM = MapperDesc{
	Name:         "NROM",
	Load:         loadNROM,
	PRGROMbanksz: 0x4000,
}

// nrom maps PRGROM at $8000-$FFFF. The index into PRGROM is taken modulo
// its actual size, so that a single 16KB bank is mirrored at $C000 whatever
// the size. Cartridge RAM ($6000-$7FFF) isn't emulated.
type nrom struct {
	bus *hwio.Table
	prg []byte

	PRGRAM hwio.Device
	PRGROM hwio.Device
}

func loadNROM(b *base) (hw.Mapper, error) {
	m := &nrom{
		bus: hwio.NewTable("nrom"),
		prg: b.rom.PRG,
	}
	m.PRGRAM = hwio.Device{
		Name:    "PRGRAM",
		Size:    0x2000,
		WriteCb: m.dropWrite,
	}
	m.PRGROM = hwio.Device{
		Name:   "PRGROM",
		Size:   0x8000,
		Flags:  hwio.ReadOnlyFlag,
		ReadCb: m.readPRG,
		PeekCb: m.readPRG,
	}

	m.bus.MapDevice(0x6000, &m.PRGRAM)
	m.bus.MapDevice(0x8000, &m.PRGROM)
	return m, nil
}

func (m *nrom) readPRG(addr uint16) uint8 {
	return m.prg[int(addr-0x8000)%len(m.prg)]
}

func (m *nrom) dropWrite(addr uint16, val uint8) {
	modMapper.DebugZ("write to PRGRAM ignored").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}

func (m *nrom) Read8(addr uint16) uint8       { return m.bus.Read8(addr) }
func (m *nrom) Peek8(addr uint16) uint8       { return m.bus.Peek8(addr) }
func (m *nrom) Write8(addr uint16, val uint8) { m.bus.Write8(addr, val) }
