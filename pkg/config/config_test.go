package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "remapdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "remapdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "remapdb", "logs"),
		},
		{
			msg: "known ids file",
			fn:  config.KnownIDsFilePath,
			res: filepath.Join(
				tempHome, ".config", "remapdb", "known_ids.yaml"),
		},
		{
			msg: "snapshot file",
			fn:  config.SnapshotFilePath,
			res: filepath.Join(
				tempHome, ".cache", "remapdb", "id_mappings.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "legacy", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 30_000, cfg.Database.BatchSize)

		// Identifier defaults
		assert.Equal(t, 17, cfg.Identifier.Width)
		assert.Equal(t, "0-9a-z", cfg.Identifier.Alphabet)
		assert.Equal(t, "/view/", cfg.Identifier.PathMarker)
		assert.Equal(t, []string{"id"}, cfg.Identifier.QueryParams)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionIdentifierWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid width",
			input:    24,
			expected: 24,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 17, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: 17, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptIdentifierWidth(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Identifier.Width)
		})
	}
}

func TestOptionIdentifierAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid alphabet",
			input:    "0-9a-z",
			expected: "0-9a-z",
		},
		{
			name:     "trims whitespace",
			input:    "  0-9a-z  ",
			expected: "0-9a-z",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "0-9a-z", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptIdentifierAlphabet(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Identifier.Alphabet)
		})
	}
}

func TestOptionDumpDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDumpDir("/data/dumps")})
	assert.Equal(t, "/data/dumps", cfg.Dump.Dir)
}

func TestRuntimeOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptTransformFiles([]string{"3_account.sql"}),
		config.OptTransformFromSnapshot(true),
		config.OptGenerateForce(true),
	})
	assert.Equal(t, []string{"3_account.sql"}, cfg.Transform.Files)
	assert.True(t, cfg.Transform.FromSnapshot)
	assert.True(t, cfg.Generate.Force)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.com"),
		config.OptIdentifierWidth(24),
		config.OptDumpDir("/data/dumps"),
		config.OptJobsNumber(4),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, "db.example.com", clone.Database.Host)
	assert.Equal(t, 24, clone.Identifier.Width)
	assert.Equal(t, "/data/dumps", clone.Dump.Dir)
	assert.Equal(t, 4, clone.JobsNumber)

	// Runtime-only fields do not round-trip.
	cfg.Update([]config.Option{config.OptGenerateForce(true)})
	clone2 := config.New()
	clone2.Update(cfg.ToOptions())
	assert.False(t, clone2.Generate.Force)
}
