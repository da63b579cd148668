package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCmd_Use(t *testing.T) {
	assert.Equal(t, "tools", toolsCmd.Use)
}

func TestToolsCmd_ListsAllTools(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "lovable")
	assert.Contains(t, out, "same_dev")
}

func TestToolsInfoCmd_Executes(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "tools", "info", "bolt")
	require.NoError(t, err)
	assert.Contains(t, out, "bolt")
	assert.Contains(t, out, "Tone:")
}

func TestToolsInfoCmd_UnknownTool(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "tools", "info", "photoshop")
	assert.Error(t, err)
}

func TestToolsSuggestCmd_Executes(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "tools", "suggest", "lovable", "--type", "web_app")
	require.NoError(t, err)
	assert.Contains(t, out, "Task ideas for lovable")
	assert.Contains(t, out, "skeleton")
}

func TestToolsSuggestCmd_PositionalProjectType(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "tools", "suggest", "bolt", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Task ideas for bolt")
}
