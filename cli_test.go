package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu"
	"nescore/hw"
)

// writeRom writes a NROM-128 rom running an infinite loop at $8000.
func writeRom(t *testing.T, dir, name string) string {
	t.Helper()

	buf := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16<<10)
	copy(prg, []byte{0xE8, 0x4C, 0x00, 0x80}) // INX ; JMP $8000
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, 8<<10)...)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	dir := t.TempDir()
	rom := writeRom(t, dir, "test.nes")

	tests := []struct {
		args  []string
		mode  mode
		check func(*testing.T, CLI)
	}{
		{
			args: []string{"run", rom, "--cycles", "1000", "--unthrottled", "--nmi"},
			mode: runMode,
			check: func(t *testing.T, cli CLI) {
				want := Run{RomPath: rom, Cycles: 1000, Unthrottled: true, NMI: true}
				if diff := cmp.Diff(want, cli.Run, cmp.AllowUnexported(outfile{})); diff != "" {
					t.Errorf("run args mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			args: []string{"rom-infos", rom, rom},
			mode: romInfosMode,
			check: func(t *testing.T, cli CLI) {
				if len(cli.RomInfos.RomPaths) != 2 {
					t.Errorf("got %d rom paths, want 2", len(cli.RomInfos.RomPaths))
				}
			},
		},
		{args: []string{"version"}, mode: versionMode},
		{args: []string{"save-config"}, mode: saveConfigMode},
		{
			args: []string{"save-config", filepath.Join(dir, "cfg.toml"), "--log", "cpu,mapper"},
			mode: saveConfigMode,
			check: func(t *testing.T, cli CLI) {
				if cli.SaveConfig.Path != filepath.Join(dir, "cfg.toml") {
					t.Errorf("path = %q", cli.SaveConfig.Path)
				}
				if cli.Log == 0 {
					t.Errorf("--log not decoded")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cli, err := parseArgs(tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if cli.mode != tt.mode {
				t.Errorf("mode = %d, want %d", cli.mode, tt.mode)
			}
			if tt.check != nil {
				tt.check(t, cli)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	dir := t.TempDir()
	rom := writeRom(t, dir, "test.nes")

	for _, args := range [][]string{
		{"run", filepath.Join(dir, "missing.nes")},
		{"run", rom, "--log", "bogus"},
		{"run", rom, "--log", "all,no"},
		{"run", rom, "--log", "no,cpu"},
		{"run", rom, "--cycles", "many"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) should fail", args)
		}
	}
}

func TestTraceFlag(t *testing.T) {
	dir := t.TempDir()
	rom := writeRom(t, dir, "test.nes")
	tracePath := filepath.Join(dir, "trace.log")

	cli, err := parseArgs([]string{"run", rom, "--trace", tracePath, "--cycles", "10", "--unthrottled"})
	if err != nil {
		t.Fatal(err)
	}
	if err := emuMain(cli.Run, emu.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
	if !strings.HasPrefix(lines[0], "8000  E8        INX") {
		t.Errorf("unexpected first trace line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "8001  4C 00 80  JMP $8000") {
		t.Errorf("unexpected second trace line %q", lines[1])
	}
}

func TestEmuMainDumpState(t *testing.T) {
	dir := t.TempDir()
	rom := writeRom(t, dir, "test.nes")
	statePath := filepath.Join(dir, "state.json")

	args := Run{RomPath: rom, Cycles: 5000, Unthrottled: true, DumpState: statePath}
	if err := emuMain(args, emu.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatal(err)
	}
	var state hw.CPUState
	if err := json.Unmarshal(buf, &state); err != nil {
		t.Fatalf("invalid state %s: %v", buf, err)
	}
	if state.Cycles < 5000 {
		t.Errorf("state.Cycles = %d, want at least 5000", state.Cycles)
	}
	if state.PC < 0x8000 || state.PC > 0x8003 {
		t.Errorf("state.PC = $%04X, should be in the rom loop", state.PC)
	}
	if state.X == 0 {
		t.Errorf("state.X = 0, loop didn't run")
	}
}

func TestEmuMainErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.nes")
	if err := os.WriteFile(bad, []byte("not a rom at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := emuMain(Run{RomPath: bad}, emu.DefaultConfig()); err == nil {
		t.Error("emuMain should fail with an invalid rom")
	}

	cfg := emu.DefaultConfig()
	cfg.Emulation.CyclesPerFrame = -1
	if err := emuMain(Run{RomPath: writeRom(t, dir, "ok.nes")}, cfg); err == nil {
		t.Error("emuMain should fail with an invalid config")
	}
}

func TestRomInfos(t *testing.T) {
	dir := t.TempDir()
	rom1 := writeRom(t, dir, "one.nes")
	rom2 := writeRom(t, dir, "two.nes")

	var sb strings.Builder
	if err := romInfosMain(&sb, []string{rom1, rom2}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	i1, i2 := strings.Index(out, rom1+":"), strings.Index(out, rom2+":")
	if i1 == -1 || i2 == -1 || i1 > i2 {
		t.Errorf("roms should be listed in argument order:\n%s", out)
	}
	if strings.Count(out, "vertical") != 2 {
		t.Errorf("missing mirroring info:\n%s", out)
	}

	err := romInfosMain(&sb, []string{rom1, filepath.Join(dir, "missing.nes")})
	if err == nil || !strings.Contains(err.Error(), "missing.nes") {
		t.Errorf("romInfosMain() error = %v, should name the missing rom", err)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nescore.toml")
	cfg := emu.DefaultConfig()
	cfg.Emulation.StopOnJam = true

	got, err := saveConfigMain(cfg, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("saveConfigMain() = %q, want %q", got, path)
	}

	loaded, err := emu.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
