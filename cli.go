package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/emu/log"
)

type mode byte

const (
	runMode        mode = iota // Run a ROM
	romInfosMode               // Show ROM infos
	versionMode                // Show nescore version
	saveConfigMode             // Write configuration file
)

type (
	CLI struct {
		Run        Run        `cmd:"" help:"Run ROM in emulator."`
		RomInfos   RomInfos   `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Version    Version    `cmd:"" help:"Show nescore version."`
		SaveConfig SaveConfig `cmd:"" help:"Write the effective configuration to file." name:"save-config"`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Config string     `name:"config" help:"${config_help}" type:"path" placeholder:"FILE"`

		mode mode
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." required:"true" type:"existingfile"`

		Trace       *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		Cycles      int64    `name:"cycles" help:"Stop after N CPU cycles (0 means no limit)." placeholder:"N"`
		Unthrottled bool     `name:"unthrottled" help:"Run as fast as possible."`
		NMI         bool     `name:"nmi" help:"Raise an NMI at the start of each frame."`
		StopOnJam   bool     `name:"stop-on-jam" help:"Stop when the CPU jams."`
		DumpState   string   `name:"dump-state" help:"${dumpstate_help}" type:"path" placeholder:"FILE"`
		CPUProfile  string   `name:"cpuprofile" help:"${cpuprofile_help}" type:"path"`
	}

	RomInfos struct {
		RomPaths []string `arg:"" name:"/path/to/rom" help:"ROMs to inspect."`
	}

	SaveConfig struct {
		Path string `arg:"" optional:"" help:"${saveconfig_help}" type:"path"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"cpuprofile_help": "Write CPU profile to file.",
	"dumpstate_help":  "Write the final CPU state to file, as JSON.",
	"log_help":        "Enable logging for specified modules.",
	"config_help":     "Configuration file. (default: nescore/config.toml in the user config directory)",
	"saveconfig_help": "Destination file. (default: nescore/config.toml in the user config directory)",
}

func parseArgs(args []string) (CLI, error) {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("nescore"),
		kong.Description("NES 6502 CPU emulator core."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return cfg, err
	}

	switch strings.Fields(ctx.Command())[0] {
	case "rom-infos":
		cfg.mode = romInfosMode
	case "version":
		cfg.mode = versionMode
	case "save-config":
		cfg.mode = saveConfigMode
	default:
		cfg.mode = runMode
	}
	return cfg, nil
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	var mask logModMask
	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			mask |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		*lm = 0
		return nil
	}

	if allLogs {
		mask = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(mask))
	*lm = mask
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf("%s.\n\t%s", fmt.Sprintf(format, args...), err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
