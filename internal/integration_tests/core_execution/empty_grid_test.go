package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sumgridgo/internal/testutil"
)

// Test for: A configuration with manifests but no steps is not an error;
// the app just notes there is nothing to do.
func TestCoreExecution_EmptyGrid_WarnsAndSucceeds(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"modules/sum/manifest.hcl": sumManifestHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "No steps found in grid, execution not required.")
	assert.NotContains(t, result.LogOutput, "🚀")
}
