package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetGenerateCmd_Exists verifies getGenerateCmd returns
// a valid command.
func TestGetGenerateCmd_Exists(t *testing.T) {
	cmd := getGenerateCmd()
	require.NotNil(t, cmd, "Generate command should exist")
	assert.Equal(t, "generate", cmd.Use,
		"Command name should be generate")
	assert.Contains(t, cmd.Aliases, "gen",
		"Command should have gen alias")
}

// TestGetGenerateCmd_Descriptions verifies description content.
func TestGetGenerateCmd_Descriptions(t *testing.T) {
	cmd := getGenerateCmd()

	assert.Contains(t, cmd.Short, "mapping",
		"Short description should mention mapping")
	assert.Contains(t, cmd.Long, "id_mappings",
		"Long description should mention id_mappings")
	assert.Contains(t, cmd.Long, "known_ids.yaml",
		"Long description should mention known_ids.yaml")
}

// TestGetGenerateCmd_ForceFlag verifies --force flag exists.
func TestGetGenerateCmd_ForceFlag(t *testing.T) {
	cmd := getGenerateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag,
		"--force flag should exist")

	assert.Equal(t, "f", forceFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "false", forceFlag.DefValue,
		"Default should be false")
}

// TestGetGenerateCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetGenerateCmd_IndependentInstances(t *testing.T) {
	cmd1 := getGenerateCmd()
	cmd2 := getGenerateCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")
}
