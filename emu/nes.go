package emu

import (
	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/mappers"
	"nescore/ines"
)

// NES is the wired console: CPU, bus and cartridge mapper.
type NES struct {
	CPU    *hw.CPU
	Bus    *hw.Bus
	Mapper hw.Mapper
	Rom    *ines.Rom
}

// PowerUp connects the cartridge to a new bus and CPU, then resets the CPU.
func PowerUp(rom *ines.Rom) (*NES, error) {
	log.ModRom.InfoZ("loading rom").
		Int("prg", len(rom.PRG)).
		Int("chr", len(rom.CHR)).
		Stringer("mirroring", rom.Mirroring()).
		Bool("battery", rom.HasPersistent()).
		End()

	mapper, err := mappers.Load(rom)
	if err != nil {
		return nil, err
	}

	bus := hw.NewBus(mapper)
	nes := &NES{
		CPU:    hw.NewCPU(bus),
		Bus:    bus,
		Mapper: mapper,
		Rom:    rom,
	}
	nes.Reset()
	return nes, nil
}

// Reset puts the CPU in its power-up state. RAM content is kept.
func (nes *NES) Reset() {
	nes.CPU.Reset()
	log.ModEmu.InfoZ("power up").Hex16("PC", nes.CPU.PC).End()
}

// RunCycles ticks the CPU ncycles times, or until it jams if stopOnJam is
// set. It returns the number of ticks actually performed.
func (nes *NES) RunCycles(ncycles int64, stopOnJam bool) int64 {
	if !stopOnJam {
		nes.CPU.Run(ncycles)
		return ncycles
	}

	for i := range ncycles {
		nes.CPU.Tick()
		if nes.CPU.Jammed() {
			return i + 1
		}
	}
	return ncycles
}
