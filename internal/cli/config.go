package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lattice-systems/gridmorph/mapping"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

// appName is the application name used for directories and display.
const appName = "gridmorph"

// defaultGreedyRestarts is used when greedy ordering is requested
// without an explicit restart count.
const defaultGreedyRestarts = 10

// config holds the file-backed defaults for the map command. Flags
// override whatever the file provides; a missing file leaves the zero
// value in place.
type config struct {
	Mode       string `toml:"mode"`        // default lattice mode ("square", "weighted", "triangular")
	Method     string `toml:"method"`      // default ordering method ("auto", "exact", "greedy")
	Seed       uint64 `toml:"seed"`        // seed for greedy ordering
	Restarts   int    `toml:"restarts"`    // restart count for greedy ordering
	CatalogDir string `toml:"catalog_dir"` // overrides the default catalog location
}

// loadConfig reads the TOML config from path. An explicit path must
// exist; the default path (configPath) is optional and a missing file
// yields the zero config.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			return config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the default config file location using the XDG
// standard (~/.config/gridmorph.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName+".toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName+".toml"), nil
}

// catalogDir returns the catalog directory, preferring the configured
// override and falling back to the XDG cache standard
// (~/.cache/gridmorph/).
func catalogDir(cfg config) (string, error) {
	if cfg.CatalogDir != "" {
		return cfg.CatalogDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseMode resolves a mode name from a flag or config file. "square"
// is accepted as an alias for the unweighted square lattice.
func parseMode(s string) (mapping.Mode, error) {
	if s == "" || s == "square" {
		return mapping.Unweighted, nil
	}
	var m mapping.Mode
	if err := m.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("--mode: %w", err)
	}
	return m, nil
}

// parseMethod resolves an ordering method name. Greedy ordering takes
// its restart count and seed from the remaining arguments, defaulting
// the restarts when non-positive.
func parseMethod(name string, restarts int, seed uint64) (pathdecomp.Method, error) {
	switch name {
	case "", "auto":
		return pathdecomp.MethodAuto{}, nil
	case "exact":
		return pathdecomp.MethodExact{}, nil
	case "greedy":
		if restarts <= 0 {
			restarts = defaultGreedyRestarts
		}
		return pathdecomp.MethodGreedy{NRepeat: restarts, Seed: seed}, nil
	default:
		return nil, fmt.Errorf("--method: unknown method %q (want auto, exact, or greedy)", name)
	}
}

// parseIntList parses a comma-separated list of integers, as used by
// the --order and --config flags. Empty input yields nil.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
