package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of mapping rows inserted per
// batch during generation.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptIdentifierWidth sets the exact character width of legacy
// identifiers.
func OptIdentifierWidth(i int) Option {
	return func(c *Config) {
		if isValidInt("Identifier Width", i) {
			c.Identifier.Width = i
		}
	}
}

// OptIdentifierAlphabet sets the identifier alphabet as a regex
// character class (without brackets), e.g. "0-9a-z".
func OptIdentifierAlphabet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Identifier Alphabet", s) {
			c.Identifier.Alphabet = s
		}
	}
}

// OptIdentifierPathMarker sets the path segment preceding identifiers
// in hyperlink fragments.
func OptIdentifierPathMarker(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Identifier Path Marker", s) {
			c.Identifier.PathMarker = s
		}
	}
}

// OptIdentifierQueryParams sets the query-string parameter names whose
// values are legacy identifiers.
func OptIdentifierQueryParams(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Identifier.QueryParams = ss
		}
	}
}

// OptDumpDir sets the directory holding dump files.
func OptDumpDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dump Dir", s) {
			c.Dump.Dir = s
		}
	}
}

// OptTransformFiles restricts transform/reconcile to the named files.
// Empty slice means process all eligible files.
// Runtime-only field - not in ToOptions().
func OptTransformFiles(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Transform.Files = ss
		}
	}
}

// OptTransformFromSnapshot loads the mapping store from the local
// SQLite snapshot instead of PostgreSQL.
// Runtime-only field - not in ToOptions().
func OptTransformFromSnapshot(b bool) Option {
	return func(c *Config) {
		c.Transform.FromSnapshot = b
	}
}

// OptGenerateForce skips the confirmation prompt when the mapping
// table already holds entries.
// Runtime-only field - not in ToOptions().
func OptGenerateForce(b bool) Option {
	return func(c *Config) {
		c.Generate.Force = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel
// file transforms. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
