package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/remaplab/remapdb/internal/iofs"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"1_schema.sql",
		"3_documents.sql",
		"3_folders.sql",
		"3_documents.sql.transformed",
	} {
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, name), []byte("x\n"), 0644))
	}

	cfg = config.New()
	cfg.Update([]config.Option{config.OptDumpDir(dir)})

	t.Run("all data files", func(t *testing.T) {
		cfg.Transform.Files = nil
		paths, err := resolveFiles(iofs.DataFiles, dumpfile.IsData)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "3_documents.sql"),
			filepath.Join(dir, "3_folders.sql"),
		}, paths)
	})

	t.Run("explicit subset", func(t *testing.T) {
		cfg.Transform.Files = []string{"3_folders.sql"}
		paths, err := resolveFiles(iofs.DataFiles, dumpfile.IsData)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{filepath.Join(dir, "3_folders.sql")}, paths)
	})

	t.Run("wrong kind is skipped", func(t *testing.T) {
		cfg.Transform.Files = []string{"1_schema.sql"}
		paths, err := resolveFiles(iofs.DataFiles, dumpfile.IsData)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("missing dump dir", func(t *testing.T) {
		cfg = config.New()
		_, err := resolveFiles(iofs.DataFiles, dumpfile.IsData)
		assert.Error(t, err)
	})
}
