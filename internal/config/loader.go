// Package config loads the CLI's small YAML configuration:
// the data-availability cutover timestamp and the preimage
// store backend to use for hydrating blinded trie nodes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"triecodec/internal/log"
)

// StoreBackend names a supported preimage store implementation.
type StoreBackend string

const (
	StoreMem    StoreBackend = "mem"
	StoreBadger StoreBackend = "badger"
)

// AppConfig is the parsed, validated configuration.
type AppConfig struct {
	// CutoverTime is the block timestamp at or after which the
	// blob data-availability source is selected over calldata.
	CutoverTime uint64

	// StoreBackend selects the preimage store implementation.
	StoreBackend StoreBackend

	// StorePath is the on-disk path for the badger backend.
	// Ignored for the mem backend.
	StorePath string
}

// rawConfig mirrors the on-disk YAML structure.
type rawConfig struct {
	CutoverTime uint64 `yaml:"cutover_time"`
	Store       struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"store"`
}

// Loader reads and validates the CLI config file.
type Loader struct {
	log log.Logger
}

// NewLoader creates a new config Loader with the
// specified logging context attached.
func NewLoader(log log.Logger) *Loader {
	return &Loader{
		log: log.With("component", "config-loader"),
	}
}

// Load reads and parses the config file at the specified path.
func (l *Loader) Load(path string) (*AppConfig, error) {
	l.log.Info("load config", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	backend := StoreBackend(raw.Store.Backend)
	if backend == "" {
		backend = StoreMem
	}
	if err = validateBackend(backend, raw.Store.Path); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	return &AppConfig{
		CutoverTime:  raw.CutoverTime,
		StoreBackend: backend,
		StorePath:    raw.Store.Path,
	}, nil
}

// validateBackend checks that backend is supported and, for
// backends requiring one, that a path was given.
func validateBackend(backend StoreBackend, path string) error {
	switch backend {
	case StoreMem:
		return nil
	case StoreBadger:
		if path == "" {
			return fmt.Errorf("store.path is required for backend %q", backend)
		}
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", backend)
	}
}
