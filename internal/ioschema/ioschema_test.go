package ioschema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/remaplab/remapdb/internal/ioschema"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaInput = `CREATE TABLE documents (
    id character varying(17) NOT NULL,
    parent_id character(17),
    owner_id varchar(17) DEFAULT NULL,
    title character varying(255) NOT NULL,
    body text
);
ALTER TABLE ONLY documents
    ADD CONSTRAINT documents_pkey PRIMARY KEY (id);
`

const schemaOutput = `CREATE TABLE documents (
    id bigint NOT NULL,
    parent_id bigint,
    owner_id bigint DEFAULT NULL,
    title character varying(255) NOT NULL,
    body text
);
ALTER TABLE ONLY documents
    ADD CONSTRAINT documents_pkey PRIMARY KEY (id);
`

func TestRewriteSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1_schema.sql")
	require.NoError(t, os.WriteFile(path, []byte(schemaInput), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})

	rw := ioschema.New(cfg)
	require.NoError(t,
		rw.RewriteSchema(context.Background(), path))

	got, err := os.ReadFile(path + ".transformed")
	require.NoError(t, err)
	assert.Equal(t, schemaOutput, string(got))

	// The source dump is untouched.
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, schemaInput, string(src))
}

func TestRewriteSchemaCustomWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1_schema.sql")
	input := "CREATE TABLE t (ref CHAR(8) NOT NULL, note varchar(17));\n"
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptIdentifierWidth(8),
	})

	rw := ioschema.New(cfg)
	require.NoError(t,
		rw.RewriteSchema(context.Background(), path))

	got, err := os.ReadFile(path + ".transformed")
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE t (ref bigint NOT NULL, note varchar(17));\n",
		string(got))
}

func TestRewriteSchemaMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})

	rw := ioschema.New(cfg)
	err := rw.RewriteSchema(
		context.Background(),
		filepath.Join(t.TempDir(), "1_schema.sql"),
	)
	assert.Error(t, err)
}
