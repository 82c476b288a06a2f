// Package config provides configuration management for remapdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Identifier: width, alphabet, path_marker, query_params
//   - Dump: dir
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Transform.Files, Transform.FromSnapshot, Generate.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use REMAPDB_ prefix with underscores for nesting:
//
//	REMAPDB_DATABASE_HOST=localhost
//	REMAPDB_DATABASE_PORT=5432
//	REMAPDB_IDENTIFIER_WIDTH=17
//	REMAPDB_DUMP_DIR=/data/dumps
//	REMAPDB_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete remapdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings for the legacy
	// data and the id_mappings table.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Identifier describes the shape of the legacy identifiers and the
	// embedded contexts they appear in.
	Identifier IdentifierConfig `mapstructure:"identifier" yaml:"identifier"`

	// Dump contains settings for locating dump files.
	Dump DumpConfig `mapstructure:"dump" yaml:"dump"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// file transforms. Default value is set according to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Transform contains settings specific to the transform and
	// reconcile commands.
	Transform TransformConfig

	// Generate contains settings specific to the generate command.
	Generate GenerateConfig

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	// It holds the imported legacy data and the id_mappings table.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of mapping rows inserted per batch
	// during generation. PostgreSQL limits a statement to 65535
	// parameters; with 2 parameters per row the ceiling is 32767 rows.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// IdentifierConfig describes the fixed-width identifier shape.
// Width and alphabet are configuration, not constants: different legacy
// schemas use different conventions.
type IdentifierConfig struct {
	// Width is the exact number of characters in a legacy identifier.
	Width int `mapstructure:"width" yaml:"width"`

	// Alphabet is a regular-expression character class (without
	// brackets) describing the identifier alphabet, e.g. "0-9a-z".
	Alphabet string `mapstructure:"alphabet" yaml:"alphabet"`

	// PathMarker is the path segment that precedes an identifier in
	// hyperlink fragments, e.g. "/view/" in "/#Account/view/<id>".
	PathMarker string `mapstructure:"path_marker" yaml:"path_marker"`

	// QueryParams lists query-string parameter names whose values are
	// legacy identifiers, e.g. "id" in "entryPoint=download&amp;id=<id>".
	QueryParams []string `mapstructure:"query_params" yaml:"query_params"`
}

// DumpConfig contains settings for locating dump files.
type DumpConfig struct {
	// Dir is the directory holding schema and data dump files.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// TransformConfig contains settings specific to the transform and
// reconcile commands.
type TransformConfig struct {
	// Files restricts processing to the named dump files.
	// Empty slice means process every eligible file in Dump.Dir.
	Files []string

	// FromSnapshot loads the mapping store from the local SQLite
	// snapshot instead of PostgreSQL.
	FromSnapshot bool
}

// GenerateConfig contains settings specific to the generate command.
type GenerateConfig struct {
	// Force skips the confirmation prompt when the mapping table
	// already holds entries.
	Force bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "legacy",
			SSLMode:   "disable",
			BatchSize: 30_000, // stays under the 65535-parameter limit
		},
		Identifier: IdentifierConfig{
			Width:       17,
			Alphabet:    "0-9a-z",
			PathMarker:  "/view/",
			QueryParams: []string{"id"},
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
