package mappers

import (
	"fmt"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/ines"
)

var modMapper = log.NewModule("mapper")

// Load creates the mapper the rom asks for.
func Load(rom *ines.Rom) (hw.Mapper, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ines.ErrUnsupportedMapper, rom.Mapper())
	}
	base, err := newbase(desc, rom)
	if err != nil {
		return nil, fmt.Errorf("mapper initialization failed: %w", err)
	}
	m, err := base.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load mapper %s: %w", desc.Name, err)
	}

	modMapper.InfoZ("mapper loaded").
		String("name", desc.Name).
		Int("prgrom", len(rom.PRG)).
		Int("chrrom", len(rom.CHR)).
		End()
	return m, nil
}

type MapperDesc struct {
	Name         string
	Load         func(*base) (hw.Mapper, error)
	PRGROMbanksz int
}

var All = map[uint8]MapperDesc{
	0: NROM,
}
