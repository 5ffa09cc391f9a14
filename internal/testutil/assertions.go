package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStepRan checks the log output within a HarnessResult to confirm that a
// specific step has completed. It abstracts the executor's log format, making
// tests more resilient to internal refactoring.
func AssertStepRan(t *testing.T, result *HarnessResult, runnerType, stepName string) {
	t.Helper()

	// The run id and other contextual attributes sit between the message and
	// the step attribute, so the two fields are matched independently on the
	// same line.
	stepAttr := fmt.Sprintf("step=step.%s.%s", runnerType, stepName)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, `msg="✅ Finished step"`) && strings.Contains(line, stepAttr) {
			return
		}
	}

	require.Failf(t, "step did not complete",
		"expected log output for completed step '%s.%s' was not found in logs", runnerType, stepName)
}
