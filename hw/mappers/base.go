package mappers

import (
	"errors"
	"fmt"

	"nescore/hw"
	"nescore/ines"
)

var ErrNoPRGROM = errors.New("rom has no PRGROM")

type base struct {
	desc MapperDesc
	rom  *ines.Rom
}

func newbase(desc MapperDesc, rom *ines.Rom) (*base, error) {
	if len(rom.PRG) == 0 {
		return nil, ErrNoPRGROM
	}
	if len(rom.PRG)%desc.PRGROMbanksz != 0 {
		return nil, fmt.Errorf("PRGROM size %d is not a multiple of %d", len(rom.PRG), desc.PRGROMbanksz)
	}

	return &base{desc: desc, rom: rom}, nil
}

func (b *base) load() (hw.Mapper, error) {
	return b.desc.Load(b)
}
