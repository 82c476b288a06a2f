package iostream_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/remaplab/remapdb/internal/iostream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		msg     string
		content string
		lines   int
	}{
		{"empty file", "", 0},
		{"one line with newline", "a\n", 1},
		{"one line without newline", "a", 1},
		{"several lines", "a\nb\nc\n", 3},
		{"trailing unterminated line", "a\nb", 2},
		{"blank lines count", "\n\n\n", 3},
	}

	for i, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			path := writeFile(t, dir, strings.Repeat("f", i+1), tt.content)
			lines, err := iostream.CountLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.lines, lines)
		})
	}
}

func TestCountLinesMissingFile(t *testing.T) {
	_, err := iostream.CountLines(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestProcessIdentity(t *testing.T) {
	dir := t.TempDir()
	content := "line one\r\nline two\nlast line without newline"
	in := writeFile(t, dir, "in.sql", content)
	out := filepath.Join(dir, "out.sql")

	lines, err := iostream.Process(in, out, 0, "",
		func(line string) string { return line })
	require.NoError(t, err)
	assert.Equal(t, 3, lines)

	// An identity transform is byte-exact, including mixed newline
	// styles and a missing final newline.
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestProcessTransform(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.sql", "aaa\nbbb\nccc\n")
	out := filepath.Join(dir, "out.sql")

	lines, err := iostream.Process(in, out, 3, "test: ",
		strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, 3, lines)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "AAA\nBBB\nCCC\n", string(got))
}

func TestProcessInPlace(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.sql", "abc\ndef\n")

	// Input and output may be the same path; the temp file plus
	// rename makes the rewrite safe.
	lines, err := iostream.Process(in, in, 0, "",
		strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, 2, lines)

	got, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "ABC\nDEF\n", string(got))
}

func TestProcessMissingInputLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.sql")

	_, err := iostream.Process(
		filepath.Join(dir, "nope.sql"), out, 0, "",
		func(line string) string { return line })
	assert.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr),
		"failed run must not leave a committed artifact")
}

func TestProcessNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.sql", "a\nb\n")
	out := filepath.Join(dir, "out.sql")

	_, err := iostream.Process(in, out, 0, "",
		func(line string) string { return line })
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"in.sql", "out.sql"}, names)
}
