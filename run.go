package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"

	"nescore/emu"
	"nescore/ines"
)

// emuMain runs the emulator with the given rom, until it stops or gets
// interrupted.
func emuMain(args Run, cfg emu.Config) error {
	rom, err := ines.Open(args.RomPath)
	if err != nil {
		return fmt.Errorf("error reading ROM: %w", err)
	}

	if args.Trace != nil {
		cfg.TraceOut = args.Trace
		defer args.Trace.Close()
	}
	if args.Cycles > 0 {
		cfg.Emulation.MaxCycles = args.Cycles
	}
	cfg.Emulation.Unthrottled = cfg.Emulation.Unthrottled || args.Unthrottled
	cfg.Emulation.NMIEveryFrame = cfg.Emulation.NMIEveryFrame || args.NMI
	cfg.Emulation.StopOnJam = cfg.Emulation.StopOnJam || args.StopOnJam

	emulator, err := emu.Launch(rom, cfg)
	if err != nil {
		return fmt.Errorf("failed to start emulator: %w", err)
	}

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		if err != nil {
			return fmt.Errorf("failed to create cpu profile file: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to start cpu profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := emulator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if args.DumpState != "" {
		if err := dumpState(emulator, args.DumpState); err != nil {
			return fmt.Errorf("failed to dump CPU state: %w", err)
		}
	}
	return nil
}

func dumpState(emulator *emu.Emulator, path string) error {
	var e jx.Encoder
	e.SetIdent(2)
	emulator.NES.CPU.Snapshot().Encode(&e)
	buf := append(e.Bytes(), '\n')
	return os.WriteFile(path, buf, 0o644)
}

// romInfosMain decodes all roms concurrently, then prints their infos in
// argument order.
func romInfosMain(w io.Writer, paths []string) error {
	roms := make([]*ines.Rom, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			rom, err := ines.Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			roms[i] = rom
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, rom := range roms {
		if len(roms) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", paths[i])
		}
		rom.PrintInfos(w)
	}
	return nil
}

// saveConfigMain writes cfg to path, or to the default config file if path
// is empty. It returns the path of the written file.
func saveConfigMain(cfg emu.Config, path string) (string, error) {
	if path == "" {
		var err error
		if path, err = emu.DefaultConfigPath(); err != nil {
			return "", err
		}
	}
	return path, emu.SaveConfig(cfg, path)
}
