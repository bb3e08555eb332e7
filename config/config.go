// Package config loads and saves thumbsim's TOML configuration file,
// following the same defaults-then-overlay pattern the rest of the
// ecosystem uses for CLI tools (BurntSushi/toml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is thumbsim's persisted configuration.
type Config struct {
	Execution struct {
		MaxCycles    uint64 `toml:"max_cycles"`
		StackTop     string `toml:"stack_top"`
		EntryPoint   string `toml:"entry_point"`
		EnableTrace  bool   `toml:"enable_trace"`
		StrictAlign  bool   `toml:"strict_align"`
	} `toml:"execution"`

	Trace struct {
		OutputFile    string `toml:"output_file"`
		IncludeFlags  bool   `toml:"include_flags"`
		MaxEntries    int    `toml:"max_entries"`
	} `toml:"trace"`

	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowRegisters bool `toml:"show_registers"`
		ShowSource    bool `toml:"show_source"`
	} `toml:"debugger"`

	API struct {
		ListenAddr string `toml:"listen_addr"`
		Enabled    bool   `toml:"enabled"`
	} `toml:"api"`
}

// DefaultConfig returns thumbsim's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MaxCycles = 10_000_000
	cfg.Execution.StackTop = "0x20008000"
	cfg.Execution.EntryPoint = "0x00000000"
	cfg.Execution.EnableTrace = false
	cfg.Execution.StrictAlign = true

	cfg.Trace.OutputFile = "thumbsim-trace.log"
	cfg.Trace.IncludeFlags = true
	cfg.Trace.MaxEntries = 100_000

	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowRegisters = true
	cfg.Debugger.ShowSource = true

	cfg.API.ListenAddr = "127.0.0.1:7777"
	cfg.API.Enabled = false

	return cfg
}

// GetConfigPath returns the platform-specific config file path,
// falling back to a current-directory file when the user's config
// directory cannot be resolved.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "thumbsim")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "thumbsim.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "thumbsim")

	default:
		return "thumbsim.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "thumbsim.toml"
	}
	return filepath.Join(configDir, "thumbsim.toml")
}

// Load reads configuration from the default config path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads configuration from path, returning defaults
// unmodified if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the default config path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the configuration to the given path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("config: failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path) // #nosec G304 -- user-specified config path
	if err != nil {
		return fmt.Errorf("config: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: failed to encode: %w", err)
	}
	return nil
}
