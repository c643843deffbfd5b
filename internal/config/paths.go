package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Keys of the persisted record.
const (
	keyPhonePath = "phone_path"
	keyPCPath    = "pc_path"
)

// ErrSetupAborted is returned by a Prompter when the user leaves first-run setup.
var ErrSetupAborted = errors.New("setup aborted")

// ErrMissingField reports a config file without one of the two path keys.
var ErrMissingField = errors.New("missing field")

// Paths are the two root directories files are copied between. Both are used
// verbatim as prefixes, so each must already end with its separator.
type Paths struct {
	DevicePath string `mapstructure:"phone_path"`
	HostPath   string `mapstructure:"pc_path"`
}

// ConfigError reports a failure to create, read or parse the config file.
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Prompter asks the user for the two paths on first run.
type Prompter interface {
	PromptPaths() (devicePath, hostPath string, err error)
}

// Store loads Paths from a JSON file, creating it from the Prompter when it
// does not exist yet. Nothing else writes the file.
type Store struct {
	Path     string
	Prompter Prompter
}

// NewStore creates a Store for the file at path.
func NewStore(path string, prompter Prompter) *Store {
	return &Store{Path: path, Prompter: prompter}
}

// DefaultPath returns ~/.config/savswapds/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Op: "locate", Path: "~", Err: err}
	}

	return filepath.Join(home, ".config", "savswapds", "config.json"), nil
}

// Load returns the stored paths, running first-run setup if the file is absent.
func (s *Store) Load() (Paths, error) {
	_, err := os.Stat(s.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := s.create(); err != nil {
			return Paths{}, err
		}
	case err != nil:
		return Paths{}, &ConfigError{Op: "read", Path: s.Path, Err: err}
	}

	return s.read()
}

func (s *Store) create() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil { //nolint:mnd // Standard directory permissions
		return &ConfigError{Op: "mkdir", Path: filepath.Dir(s.Path), Err: err}
	}

	if s.Prompter == nil {
		return &ConfigError{Op: "prompt", Path: s.Path, Err: ErrSetupAborted}
	}

	devicePath, hostPath, err := s.Prompter.PromptPaths()
	if err != nil {
		return &ConfigError{Op: "prompt", Path: s.Path, Err: err}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(keyPhonePath, devicePath)
	v.Set(keyPCPath, hostPath)

	if err := v.WriteConfigAs(s.Path); err != nil {
		return &ConfigError{Op: "write", Path: s.Path, Err: err}
	}

	return nil
}

func (s *Store) read() (Paths, error) {
	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return Paths{}, &ConfigError{Op: "parse", Path: s.Path, Err: err}
		}

		return Paths{}, &ConfigError{Op: "read", Path: s.Path, Err: err}
	}

	for _, key := range []string{keyPhonePath, keyPCPath} {
		if !v.IsSet(key) {
			return Paths{}, &ConfigError{Op: "parse", Path: s.Path, Err: fmt.Errorf("%w: %s", ErrMissingField, key)}
		}
	}

	var paths Paths
	if err := v.Unmarshal(&paths); err != nil {
		return Paths{}, &ConfigError{Op: "parse", Path: s.Path, Err: err}
	}

	return paths, nil
}
