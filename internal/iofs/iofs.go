package iofs

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed known_ids.yaml
var KnownIDsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// DataFiles returns sorted paths of raw data dump files in dir.
func DataFiles(dir string) ([]string, error) {
	return listFiles(dir, dumpfile.IsData)
}

// SchemaFiles returns sorted paths of raw schema dump files in dir.
func SchemaFiles(dir string) ([]string, error) {
	return listFiles(dir, dumpfile.IsSchema)
}

// TransformedFiles returns sorted paths of post-transform artifacts
// in dir.
func TransformedFiles(dir string) ([]string, error) {
	return listFiles(dir, dumpfile.IsTransformed)
}

func listFiles(dir string, keep func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ListDumpDirError(dir, err)
	}

	var res []string
	for _, e := range entries {
		if e.IsDir() || !keep(e.Name()) {
			continue
		}
		res = append(res, filepath.Join(dir, e.Name()))
	}
	sort.Strings(res)
	return res, nil
}

func EnsureKnownIDsFile(homeDir string) error {
	knownPath := config.KnownIDsFilePath(homeDir)

	// Check if known ids file already exists
	if _, err := os.Stat(knownPath); err == nil {
		return nil
	}

	// Write embedded known_ids.yaml to the config directory
	if err := os.WriteFile(knownPath, []byte(KnownIDsYAML), 0644); err != nil {
		return CopyFileError(knownPath, err)
	}

	return nil
}
