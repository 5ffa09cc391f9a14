package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sumgridgo/internal/testutil"
)

// Test for: A sum step with an empty arguments block falls back to the
// manifest defaults (1 and 2).
func TestCoreExecution_SumDefaults_EmptyArguments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "defaults" {
			arguments {}
		}
	`
	files := map[string]string{
		"modules/sum/manifest.hcl": sumManifestHCL,
		"grid/main.hcl":            gridHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertStepRan(t, result, "sum", "defaults")
	assert.Contains(t, result.LogOutput, "1 + 2 = 3")
}

// Test for: The arguments block itself is optional; omitting it entirely
// behaves the same as leaving it empty.
func TestCoreExecution_SumDefaults_NoArgumentsBlock(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "bare" {}
	`
	files := map[string]string{
		"modules/sum/manifest.hcl": sumManifestHCL,
		"grid/main.hcl":            gridHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertStepRan(t, result, "sum", "bare")
	assert.Contains(t, result.LogOutput, "1 + 2 = 3")
}
