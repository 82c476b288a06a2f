// Package dumpfile implements the naming convention of dump files.
//
// Dump files carry a stage-number prefix: "1_schema.sql" is the schema
// dump, "3_<table>.sql" are data dumps. Transformed output appends the
// ".transformed" suffix to the source name.
package dumpfile

import (
	"strconv"
	"strings"
)

const (
	// TransformedSuffix marks post-transform artifacts.
	TransformedSuffix = ".transformed"

	// SchemaStage is the stage-number prefix of schema dumps.
	SchemaStage = 1

	// DataStage is the stage-number prefix of data dumps.
	DataStage = 3
)

// Stage returns the stage-number prefix of a dump file name, or 0 when
// the name does not follow the convention.
func Stage(name string) int {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0
	}
	stage, err := strconv.Atoi(prefix)
	if err != nil || stage <= 0 {
		return 0
	}
	return stage
}

// IsSchema reports whether name is a raw schema dump.
func IsSchema(name string) bool {
	return Stage(name) == SchemaStage && !IsTransformed(name) &&
		strings.HasSuffix(name, ".sql")
}

// IsData reports whether name is a raw data dump.
func IsData(name string) bool {
	return Stage(name) == DataStage && !IsTransformed(name) &&
		strings.HasSuffix(name, ".sql")
}

// IsTransformed reports whether name is a post-transform artifact.
func IsTransformed(name string) bool {
	return strings.HasSuffix(name, TransformedSuffix)
}

// TransformedName returns the output name for a dump file. A name
// that already carries the suffix is returned unchanged, so rewriting
// an artifact in place maps it onto itself.
func TransformedName(path string) string {
	if IsTransformed(path) {
		return path
	}
	return path + TransformedSuffix
}
