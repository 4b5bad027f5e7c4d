package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// lqdemo config.toml key mapping to demo run settings.
type fileConfig struct {
	Matrix [][]float64 `toml:"matrix"`
	RHS    [][]float64 `toml:"rhs"`
	Rows   int         `toml:"rows"`
	Cols   int         `toml:"cols"`
	Seed   int64       `toml:"seed"`
	ShowQ  bool        `toml:"show_q"`
}

// runConfig holds the resolved settings after overlaying the file on the
// defaults.
type runConfig struct {
	Matrix [][]float64
	RHS    [][]float64
	Rows   int
	Cols   int
	Seed   int64
	ShowQ  bool
}

func defaultRunConfig() runConfig {
	return runConfig{
		Rows: 3,
		Cols: 5,
		Seed: 1,
	}
}

// loadRunConfig reads a TOML config with default overlay: only keys present
// in the file override the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load lqdemo config: %w", err)
	}

	if meta.IsDefined("matrix") {
		cfg.Matrix = raw.Matrix
	}
	if meta.IsDefined("rhs") {
		cfg.RHS = raw.RHS
	}
	if meta.IsDefined("rows") {
		cfg.Rows = raw.Rows
	}
	if meta.IsDefined("cols") {
		cfg.Cols = raw.Cols
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("show_q") {
		cfg.ShowQ = raw.ShowQ
	}

	if cfg.Matrix == nil && (cfg.Rows < 1 || cfg.Cols < 1) {
		return runConfig{}, fmt.Errorf("load lqdemo config: rows and cols must be positive, got %d×%d", cfg.Rows, cfg.Cols)
	}
	if err := validateRagged("matrix", cfg.Matrix); err != nil {
		return runConfig{}, err
	}
	if err := validateRagged("rhs", cfg.RHS); err != nil {
		return runConfig{}, err
	}
	return cfg, nil
}

// validateRagged rejects inline matrices with uneven row lengths.
func validateRagged(key string, rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	if want == 0 {
		return fmt.Errorf("load lqdemo config: %s has an empty row", key)
	}
	for i, r := range rows {
		if len(r) != want {
			return fmt.Errorf("load lqdemo config: %s row %d has %d entries, want %d", key, i, len(r), want)
		}
	}
	return nil
}
