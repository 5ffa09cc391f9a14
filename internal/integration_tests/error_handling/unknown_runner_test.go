package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sumgridgo/internal/testutil"
)

// Test for: A step referencing a runner type with no manifest fails the run
// with a clear error instead of being silently skipped.
func TestErrorHandling_UnknownRunnerType_FailsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		step "ghost" "A" {
			arguments {}
		}
	`
	files := map[string]string{
		"grid/main.hcl": gridHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unknown runner type 'ghost'")
}
