// Package config handles command-line flags and the persisted phone/PC paths.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/savswap/pkg/listing"
)

// Config holds the application configuration
type Config struct {
	ConfigPath string `arg:"-c,--config" help:"Path to the JSON file holding the phone and PC paths"`
	ADB        string `arg:"--adb" default:"adb" help:"Android debug bridge executable"`
	Shell      string `arg:"--shell" help:"Host shell used for PC listings, e.g. \"pwsh -NoProfile -Command\" (default: powershell.exe on Windows, pwsh -Command elsewhere)"` //nolint:lll // Help text
	Filter     string `arg:"-f,--filter" help:"Only list file names matching this glob, e.g. *.sav"`
	DebugLog   string `arg:"--debug-log" help:"Write a debug log to this file"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Copy a single file between an Android phone and this PC over adb"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "savswap 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		ADB: "adb",
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig fills in defaults and validates a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}

		cfg.ConfigPath = path
	}

	if !strings.EqualFold(filepath.Ext(cfg.ConfigPath), ".json") {
		return nil, fmt.Errorf("config file must have a .json extension: %s", cfg.ConfigPath)
	}

	if strings.TrimSpace(cfg.ADB) == "" {
		return nil, fmt.Errorf("adb executable must not be empty")
	}

	if err := listing.NewFilter(cfg.Filter).Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ShellCommand splits the --shell value into executable and leading
// arguments. It is empty when no shell was given.
func (cfg *Config) ShellCommand() []string {
	return strings.Fields(cfg.Shell)
}
