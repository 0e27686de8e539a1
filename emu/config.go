package emu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"nescore/emu/log"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Log       LogConfig       `toml:"log"`

	TraceOut io.Writer `toml:"-"`
}

type EmulationConfig struct {
	CyclesPerFrame int64   `toml:"cycles_per_frame"`
	FrameRate      float64 `toml:"frame_rate"`
	Unthrottled    bool    `toml:"unthrottled"`
	NMIEveryFrame  bool    `toml:"nmi_every_frame"`
	StopOnJam      bool    `toml:"stop_on_jam"`
	MaxCycles      int64   `toml:"max_cycles"` // 0 means no limit
}

type LogConfig struct {
	Modules []string `toml:"modules"`
}

// NTSC CPU cycles per video frame.
const ntscCyclesPerFrame = 29781

func DefaultConfig() Config {
	return Config{
		Emulation: EmulationConfig{
			CyclesPerFrame: ntscCyclesPerFrame,
			FrameRate:      60,
		},
	}
}

// Check validates the configuration.
func (cfg *Config) Check() error {
	ecfg := &cfg.Emulation
	if ecfg.CyclesPerFrame <= 0 {
		return fmt.Errorf("emulation.cycles_per_frame must be positive, got %d", ecfg.CyclesPerFrame)
	}
	if !ecfg.Unthrottled && ecfg.FrameRate <= 0 {
		return fmt.Errorf("emulation.frame_rate must be positive, got %v", ecfg.FrameRate)
	}
	if ecfg.MaxCycles < 0 {
		return fmt.Errorf("emulation.max_cycles can't be negative, got %d", ecfg.MaxCycles)
	}
	for _, name := range cfg.Log.Modules {
		if _, ok := log.ModuleByName(name); !ok {
			return fmt.Errorf("log.modules: unknown module %q", name)
		}
	}
	return nil
}

// EnableLogs enables debug logs for the modules listed in the configuration.
func (lcfg LogConfig) EnableLogs() {
	var mask log.ModuleMask
	for _, name := range lcfg.Modules {
		if mod, ok := log.ModuleByName(name); ok {
			mask |= mod.Mask()
		}
	}
	if mask != 0 {
		log.EnableDebugModules(mask)
	}
}

// ConfigDir returns the nescore directory in the user config directory,
// creating it if needed.
var ConfigDir = sync.OnceValues(func() (string, error) {
	dir := configdir.LocalConfig("nescore")
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
})

const cfgFilename = "config.toml"

// DefaultConfigPath returns the path of the configuration file in the user
// config directory.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfgFilename), nil
}

// LoadConfig loads the configuration file at path. Missing keys keep their
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("unknown config key").
			String("path", path).
			String("key", key.String()).
			End()
	}
	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the nescore config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	path, err := DefaultConfigPath()
	if err != nil {
		log.ModEmu.WarnZ("no config directory, using default config").Error("err", err).End()
		return DefaultConfig()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ModEmu.WarnZ("invalid config, using default").Error("err", err).End()
		}
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to path, creating the parent directory if needed.
func SaveConfig(cfg Config, path string) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
