package iotransform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/remaplab/remapdb/internal/iotransform"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLookup is an in-memory stand-in for the mapping store.
type mapLookup map[string]uint64

func (m mapLookup) Lookup(old string) (uint64, bool) {
	id, ok := m[old]
	return id, ok
}

var testStore = mapLookup{
	"a1b2c3d4e5f60718a": 9001,
	"00000000000000000": 42,
	"ffffffffffffffff0": 123456789,
}

const testInput = `INSERT INTO documents VALUES ('a1b2c3d4e5f60718a', 'body');
<a href="/view/00000000000000000">doc</a>
https://example.com/page?id=ffffffffffffffff0&amp;lang=en
INSERT INTO documents VALUES ('zzzzzzzzzzzzzzzzz', 'orphan');
`

const testOutput = `INSERT INTO documents VALUES ('9001', 'body');
<a href="/view/42">doc</a>
https://example.com/page?id=123456789&amp;lang=en
INSERT INTO documents VALUES ('zzzzzzzzzzzzzzzzz', 'orphan');
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptJobsNumber(2),
	})
	return cfg
}

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTransformFile(t *testing.T) {
	dir := t.TempDir()
	in := writeDump(t, dir, "3_documents.sql", testInput)

	tr := iotransform.New(testConfig(t), testStore)
	res, err := tr.TransformFile(context.Background(), in)
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, in, res.Input)
	assert.Equal(t, in+".transformed", res.Output)
	assert.Equal(t, 4, res.Lines)
	assert.Equal(t, 3, res.Replaced())
	assert.Equal(t, 1, res.Unmapped())

	got, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, testOutput, string(got))

	// The source file is never touched.
	src, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, testInput, string(src))
}

func TestTransformFileInPlace(t *testing.T) {
	dir := t.TempDir()
	in := writeDump(t, dir, "3_documents.sql.transformed", testInput)

	tr := iotransform.New(testConfig(t), testStore)
	res, err := tr.TransformFile(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, in, res.Output)
	got, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, testOutput, string(got))
}

func TestTransformAll(t *testing.T) {
	dir := t.TempDir()
	a := writeDump(t, dir, "3_documents.sql", testInput)
	b := writeDump(t, dir, "3_folders.sql",
		"UPDATE folders SET parent = '00000000000000000';\n")
	missing := filepath.Join(dir, "3_missing.sql")

	tr := iotransform.New(testConfig(t), testStore)
	runs, err := tr.TransformAll(
		context.Background(), []string{a, b, missing})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.NoError(t, runs[0].Err)
	assert.Equal(t, 3, runs[0].Replaced())

	assert.NoError(t, runs[1].Err)
	assert.Equal(t, 1, runs[1].Replaced())

	// One failing file does not abort the others and leaves no output.
	assert.Error(t, runs[2].Err)
	_, statErr := os.Stat(missing + ".transformed")
	assert.True(t, os.IsNotExist(statErr))
}

func TestTransformAllEveryFileFails(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "3_missing.sql")

	tr := iotransform.New(testConfig(t), testStore)
	runs, err := tr.TransformAll(
		context.Background(), []string{missing})
	assert.Error(t, err)
	require.Len(t, runs, 1)
	assert.Error(t, runs[0].Err)
}

func TestTransformAllEmpty(t *testing.T) {
	tr := iotransform.New(testConfig(t), testStore)
	runs, err := tr.TransformAll(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, runs)
}

func TestTransformIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeDump(t, dir, "3_documents.sql", testInput)

	tr := iotransform.New(testConfig(t), testStore)
	res, err := tr.TransformFile(context.Background(), in)
	require.NoError(t, err)

	first, err := os.ReadFile(res.Output)
	require.NoError(t, err)

	// Re-running over the artifact must not change a byte: new ids are
	// decimal and unmapped occurrences pass through unchanged.
	res2, err := tr.TransformFile(context.Background(), res.Output)
	require.NoError(t, err)
	assert.Equal(t, res.Output, res2.Output)
	assert.Equal(t, 0, res2.Replaced())

	second, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
