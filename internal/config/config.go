// Package config holds the CLI settings that can come from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dbgraph/core/dbg"
)

type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

type Config struct {
	KmerSize      int          `yaml:"kmer_size"`
	Strategy      dbg.Strategy `yaml:"strategy"`
	ValidateInput bool         `yaml:"validate"`
	CheckComplete bool         `yaml:"check_complete"`
	MaxRecordID   int          `yaml:"max_record_id"`
	Log           Log          `yaml:"log"`
}

var ErrInvalid = errors.New("invalid config")

func Default() Config {
	return Config{
		KmerSize:      31,
		Strategy:      dbg.StrategyPropagate,
		CheckComplete: true,
		MaxRecordID:   dbg.DefaultMaxRecordID,
		Log:           Log{Level: "info", Format: "text"},
	}
}

// Load overlays the YAML file at path on Default. An empty path returns the
// defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.KmerSize < 2 {
		return fmt.Errorf("%w: kmer_size %d (need >= 2)", ErrInvalid, c.KmerSize)
	}
	if _, err := dbg.ParseStrategy(string(c.Strategy)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.MaxRecordID <= 0 {
		return fmt.Errorf("%w: max_record_id %d (need > 0)", ErrInvalid, c.MaxRecordID)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// BuildOptions translates the build settings into dbg options.
func (c Config) BuildOptions() []dbg.Option {
	return []dbg.Option{
		dbg.WithValidation(c.ValidateInput),
		dbg.WithCompletenessCheck(c.CheckComplete),
		dbg.WithMaxRecordID(c.MaxRecordID),
	}
}
