package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "remapdb"

	// MappingTable is the name of the table persisting identifier
	// mappings.
	MappingTable = "id_mappings"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/remapdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/remapdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/remapdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/remapdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// KnownIDsFilePath returns the full path to the known_ids.yaml file
// with supplementary externally-known identifier literals.
func KnownIDsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "known_ids.yaml")
}

// SnapshotFilePath returns the full path to the SQLite snapshot of the
// mapping store.
func SnapshotFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "id_mappings.sqlite")
}
