package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sumgridgo/internal/testutil"
)

// Test for: Explicit arguments override the manifest defaults.
func TestCoreExecution_SumArguments_BothProvided(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "explicit" {
			arguments {
				alpha = 3
				bravo = 4
			}
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
	assert.Contains(t, result.LogOutput, "3 + 4 = 7")
}

// Test for: Providing only one argument keeps the default for the other.
func TestCoreExecution_SumArguments_PartialOverride(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "partial" {
			arguments {
				alpha = 10
			}
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
	assert.Contains(t, result.LogOutput, "10 + 2 = 12")
}

// Test for: The printed equation has the exact expected shape, spaces and all.
func TestCoreExecution_SumArguments_ExactEquationLine(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "exact" {
			arguments {
				alpha = 5
				bravo = 6
			}
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
	require.Contains(t, result.LogOutput, "5 + 6 = 11\n")
	// Guard against accidental reformatting of the equation line.
	assert.False(t, strings.Contains(result.LogOutput, "5+6"), "equation should keep spaces around operators")
}

// Test for: Zero is a valid explicit value, not a missing one.
func TestCoreExecution_SumArguments_ZeroValues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "zeros" {
			arguments {
				alpha = 0
				bravo = 0
			}
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
	assert.Contains(t, result.LogOutput, "0 + 0 = 0")
}

// Test for: Negative addends flow through untouched.
func TestCoreExecution_SumArguments_NegativeValues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "sum" "negative" {
			arguments {
				alpha = -4
				bravo = 9
			}
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
	assert.Contains(t, result.LogOutput, "-4 + 9 = 5")
}
