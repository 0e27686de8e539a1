package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"nescore/emu"
)

func main() {
	cli, err := parseArgs(os.Args[1:])
	checkf(err, "failed to parse command line")

	var cfg emu.Config
	if cli.Config != "" {
		cfg, err = emu.LoadConfig(cli.Config)
		checkf(err, "failed to load configuration")
	} else {
		cfg = emu.LoadConfigOrDefault()
	}
	cfg.Log.EnableLogs()

	switch cli.mode {
	case runMode:
		checkf(emuMain(cli.Run, cfg), "emulation failed")
	case romInfosMode:
		checkf(romInfosMain(os.Stdout, cli.RomInfos.RomPaths), "failed to read ROM")
	case versionMode:
		fmt.Println("nescore", version())
	case saveConfigMode:
		path, err := saveConfigMain(cfg, cli.SaveConfig.Path)
		checkf(err, "failed to save configuration")
		fmt.Println("configuration written to", path)
	}
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
