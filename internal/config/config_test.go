package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgraph/core/dbg"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbgraph.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 31, cfg.KmerSize)
	assert.Equal(t, dbg.StrategyPropagate, cfg.Strategy)
	assert.True(t, cfg.CheckComplete)
	assert.False(t, cfg.ValidateInput)
	assert.Equal(t, 1<<26, cfg.MaxRecordID)
	assert.Equal(t, Log{Level: "info", Format: "text"}, cfg.Log)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "kmer_size: 3\nstrategy: content\nlog:\n  format: json\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.KmerSize)
	assert.Equal(t, dbg.StrategyContent, cfg.Strategy)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.CheckComplete)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "kmer: 3\n",
		"bad k":        "kmer_size: 1\n",
		"bad strategy": "strategy: guess\n",
		"bad level":    "log:\n  level: loud\n",
		"bad format":   "log:\n  format: xml\n",
		"bad max id":   "max_record_id: 0\n",
		"not yaml":     "kmer_size: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateSentinel(t *testing.T) {
	cfg := Default()
	cfg.KmerSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestBuildOptions(t *testing.T) {
	assert.Len(t, Default().BuildOptions(), 3)
}
