package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "remapdb"),
		filepath.Join(tmpDir, ".cache", "remapdb"),
		filepath.Join(tmpDir, ".local", "share", "remapdb", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestEnsureConfigFile_CreatesFile verifies config file
// is created from the embedded template.
func TestEnsureConfigFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "remapdb",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "remapdb",
		"config.yaml")

	customContent := "# Custom config\ndatabase:\n  host: myhost"
	require.NoError(t,
		os.WriteFile(configPath, []byte(customContent), 0644))

	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestEnsureKnownIDsFile_CreatesFile verifies the known ids
// file is created from the embedded template.
func TestEnsureKnownIDsFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureKnownIDsFile(tmpDir))

	knownPath := filepath.Join(tmpDir, ".config", "remapdb",
		"known_ids.yaml")
	content, err := os.ReadFile(knownPath)
	require.NoError(t, err)
	assert.Equal(t, KnownIDsYAML, string(content),
		"Known ids file content should match embedded template")
}

// TestConfigYAML_Embedded verifies embedded config is
// not empty.
func TestConfigYAML_Embedded(t *testing.T) {
	assert.NotEmpty(t, ConfigYAML,
		"Embedded ConfigYAML should not be empty")
	assert.Contains(t, ConfigYAML, "database",
		"ConfigYAML should contain database section")
	assert.Contains(t, ConfigYAML, "identifier",
		"ConfigYAML should contain identifier section")
	assert.Contains(t, ConfigYAML, "dump",
		"ConfigYAML should contain dump section")
}

// TestListFiles verifies dump directory listing by file kind.
func TestListFiles(t *testing.T) {
	tmpDir := t.TempDir()
	names := []string{
		"1_schema.sql",
		"3_accounts.sql",
		"3_documents.sql",
		"3_documents.sql.transformed",
		"notes.txt",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(
			filepath.Join(tmpDir, name), []byte("x\n"), 0644))
	}
	require.NoError(t,
		os.MkdirAll(filepath.Join(tmpDir, "3_subdir.sql"), 0755))

	data, err := DataFiles(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "3_accounts.sql"),
		filepath.Join(tmpDir, "3_documents.sql"),
	}, data)

	schemas, err := SchemaFiles(tmpDir)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{filepath.Join(tmpDir, "1_schema.sql")}, schemas)

	transformed, err := TransformedFiles(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "3_documents.sql.transformed"),
	}, transformed)
}

// TestListFiles_MissingDir verifies an error for a missing
// directory.
func TestListFiles_MissingDir(t *testing.T) {
	_, err := DataFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
