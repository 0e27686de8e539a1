package emu

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/ines"
)

type Emulator struct {
	NES *NES
	cfg EmulationConfig

	// total number of CPU ticks performed.
	ticks int64

	// These are accessed concurrently by the emulator loop and its
	// controller.
	quit   atomic.Bool
	reset  atomic.Bool
	frames atomic.Int64
}

// Launch powers up the console with rom inserted. It doesn't start the
// emulation loop, call Run for that.
func Launch(rom *ines.Rom, cfg Config) (*Emulator, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	nes, err := PowerUp(rom)
	if err != nil {
		return nil, fmt.Errorf("power up failed: %w", err)
	}

	// CPU execution trace setup.
	if cfg.TraceOut != nil {
		nes.CPU.SetTraceOutput(cfg.TraceOut)
	}

	return &Emulator{
		NES: nes,
		cfg: cfg.Emulation,
	}, nil
}

// RunOneFrame runs the CPU for one frame worth of cycles, or less if the
// cycle budget gets exhausted.
func (e *Emulator) RunOneFrame() {
	ncycles := e.cfg.CyclesPerFrame
	if e.cfg.MaxCycles > 0 {
		ncycles = min(ncycles, e.cfg.MaxCycles-e.ticks)
	}
	if ncycles <= 0 {
		return
	}

	if e.cfg.NMIEveryFrame {
		e.NES.CPU.RequestInterrupt(hw.NMI)
	}
	e.ticks += e.NES.RunCycles(ncycles, e.cfg.StopOnJam)
	e.frames.Add(1)
}

// Run runs the emulation loop until ctx is cancelled, Stop is called, the
// cycle budget is exhausted or, if configured so, the CPU jams. It only
// returns an error when ctx gets cancelled.
func (e *Emulator) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if !e.cfg.Unthrottled {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / e.cfg.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	defer func() {
		log.ModEmu.InfoZ("Emulation loop exited").
			Int64("frames", e.frames.Load()).
			Int64("cycles", e.NES.CPU.Cycles).
			Duration("elapsed", time.Since(start)).
			End()
	}()

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		e.handleReset()
		e.RunOneFrame()
		if e.shouldStop() {
			return nil
		}
	}
}

// Stop and Reset allow to control the emulator loop in a concurrent-safe
// way.

func (e *Emulator) Stop()  { e.quit.Store(true) }
func (e *Emulator) Reset() { e.reset.Store(true) }

// Frames returns the number of frames run so far.
func (e *Emulator) Frames() int64 { return e.frames.Load() }

// Ticks returns the number of CPU cycles run so far. Only call it once Run
// has returned.
func (e *Emulator) Ticks() int64 { return e.ticks }

func (e *Emulator) shouldStop() bool {
	switch {
	case e.quit.Load():
		return true
	case e.cfg.MaxCycles > 0 && e.ticks >= e.cfg.MaxCycles:
		log.ModEmu.InfoZ("cycle budget exhausted").Int64("cycles", e.ticks).End()
		return true
	case e.cfg.StopOnJam && e.NES.CPU.Jammed():
		log.ModEmu.InfoZ("stopping on CPU jam").Hex16("PC", e.NES.CPU.PC).End()
		return true
	}
	return false
}

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing reset").End()
		e.NES.CPU.RequestInterrupt(hw.ResetInterrupt)
	}
}
