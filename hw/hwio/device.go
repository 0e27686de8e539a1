package hwio

import "nescore/emu/log"

type RWFlags uint8

const (
	ReadOnlyFlag RWFlags = 1 << iota // writes are dropped
)

// Device is a BankIO8 implementation that allows manual management of an
// entire range of memory. Callbacks receive the full bus address; a nil
// callback makes the corresponding access inert (reads return 0).
type Device struct {
	Name  string // name of the memory area (for debugging)
	Size  int    // size of the memory area
	Flags RWFlags

	ReadCb  func(addr uint16) uint8
	PeekCb  func(addr uint16) uint8
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) Read8(addr uint16) uint8 {
	if d.ReadCb == nil {
		return 0
	}
	return d.ReadCb(addr)
}

func (d *Device) Peek8(addr uint16) uint8 {
	if d.PeekCb != nil {
		return d.PeekCb(addr)
	}
	return 0
}

func (d *Device) Write8(addr uint16, val uint8) {
	switch {
	case d.Flags&ReadOnlyFlag != 0:
		log.ModHwIo.DebugZ("write to readonly device ignored").
			String("name", d.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	case d.WriteCb == nil:
		return
	}

	d.WriteCb(addr, val)
}
