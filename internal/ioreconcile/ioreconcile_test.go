package ioreconcile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/remaplab/remapdb/internal/ioreconcile"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// growingStore starts with one mapping and gains another on Reload,
// like a store that was extended by a later generation run.
type growingStore struct {
	data   map[string]uint64
	loaded bool
}

func (s *growingStore) Load(_ context.Context) error {
	s.data = map[string]uint64{"a1b2c3d4e5f60718a": 9001}
	return nil
}

func (s *growingStore) Reload(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	if s.loaded {
		s.data["zzzzzzzzzzzzzzzzz"] = 123456789
	}
	s.loaded = true
	return nil
}

func (s *growingStore) Lookup(old string) (uint64, bool) {
	id, ok := s.data[old]
	return id, ok
}

func (s *growingStore) Len() int { return len(s.data) }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptJobsNumber(2),
	})
	return cfg
}

func TestReconcile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "3_documents.sql.transformed")
	content := "VALUES ('9001', 'ok');\n" +
		"VALUES ('zzzzzzzzzzzzzzzzz', 'was unmapped');\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	st := &growingStore{}
	st.loaded = true // first Reload already adds the late mapping

	rec := ioreconcile.New(testConfig(t), st)
	runs, err := rec.Reconcile(context.Background(), []string{path})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, path, runs[0].Output)
	assert.Equal(t, 1, runs[0].Replaced())
	assert.Equal(t, 0, runs[0].Unmapped())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "VALUES ('9001', 'ok');\n" +
		"VALUES ('123456789', 'was unmapped');\n"
	assert.Equal(t, want, string(got))

	// A second pass with the same store changes nothing.
	runs, err = rec.Reconcile(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, 0, runs[0].Replaced())

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(again))
}

func TestReconcileSkipsRawDumps(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "3_documents.sql")
	require.NoError(t, os.WriteFile(raw,
		[]byte("VALUES ('a1b2c3d4e5f60718a');\n"), 0644))

	st := &growingStore{}
	rec := ioreconcile.New(testConfig(t), st)
	runs, err := rec.Reconcile(context.Background(), []string{raw})
	require.NoError(t, err)
	assert.Empty(t, runs)

	// The raw dump is untouched.
	got, err := os.ReadFile(raw)
	require.NoError(t, err)
	assert.Equal(t, "VALUES ('a1b2c3d4e5f60718a');\n", string(got))
}
