package dumpfile_test

import (
	"testing"

	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	tests := []struct {
		name  string
		stage int
	}{
		{"1_schema.sql", 1},
		{"3_account.sql", 3},
		{"3_email_filter.sql", 3},
		{"10_extra.sql", 10},
		{"schema.sql", 0},
		{"x_schema.sql", 0},
		{"-1_schema.sql", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.stage, dumpfile.Stage(tt.name), tt.name)
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, dumpfile.IsSchema("1_schema.sql"))
	assert.False(t, dumpfile.IsSchema("3_account.sql"))
	assert.False(t, dumpfile.IsSchema("1_schema.sql.transformed"))

	assert.True(t, dumpfile.IsData("3_account.sql"))
	assert.False(t, dumpfile.IsData("1_schema.sql"))
	assert.False(t, dumpfile.IsData("3_account.sql.transformed"))
	assert.False(t, dumpfile.IsData("3_account.txt"))

	assert.True(t, dumpfile.IsTransformed("3_account.sql.transformed"))
	assert.False(t, dumpfile.IsTransformed("3_account.sql"))
}

func TestTransformedName(t *testing.T) {
	assert.Equal(t,
		"/dumps/3_account.sql.transformed",
		dumpfile.TransformedName("/dumps/3_account.sql"),
	)
	assert.Equal(t,
		"/dumps/3_account.sql.transformed",
		dumpfile.TransformedName("/dumps/3_account.sql.transformed"),
	)
}
