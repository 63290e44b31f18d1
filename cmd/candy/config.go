package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors candy.toml: a pure set of CLI flag defaults that
// an explicit flag always overrides. It never changes core checker
// semantics.
type fileConfig struct {
	Agent          bool   `toml:"agent"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
}

// loadFileConfig reads path if it exists, returning the zero fileConfig
// (all flag defaults left to Cobra's own registered defaults) when it
// doesn't. A present-but-unparseable file is a usage error.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		path = "candy.toml"
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, &usageError{msg: "failed to parse config file " + path + ": " + err.Error()}
	}
	return cfg, nil
}

// usageError marks a RunE failure as CLI misuse (exit code 2) rather
// than a diagnostic finding or host IO failure (exit code 1).
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }
