package integration_tests

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sumgridgo/internal/registry"
	"github.com/vk/sumgridgo/internal/testutil"
)

// Test for: The first failing step aborts the run and no later step executes.
func TestErrorHandling_StepFailure_AbortsRemainingSteps(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	explodeManifestHCL := `
		runner "explode" {
			lifecycle { on_run = "OnRunExplode" }
		}
	`
	recorderManifestHCL := `
		runner "record" {
			lifecycle { on_run = "OnRunRecord" }
			input "id" {
				type = string
			}
		}
	`
	gridHCL := `
		step "explode" "A" {
			arguments {}
		}

		step "record" "B" {
			arguments { id = "after-failure" }
		}
	`
	files := map[string]string{
		"modules/explode/manifest.hcl": explodeManifestHCL,
		"modules/record/manifest.hcl":  recorderManifestHCL,
		"grid/main.hcl":                gridHCL,
	}

	explodingModule := &testutil.SimpleModule{
		RunnerName: "OnRunExplode",
		Runner: &registry.RegisteredRunner{
			NewInput:  func() any { return new(struct{}) },
			InputType: reflect.TypeOf(struct{}{}),
			NewDeps:   func() any { return new(struct{}) },
			Fn: func(_ context.Context, _ *struct{}, _ *struct{}) (any, error) {
				return nil, errors.New("boom")
			},
		},
	}
	recorder := &testutil.RecorderModule{}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, explodingModule, recorder)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "step step.explode.A failed: boom")
	assert.Empty(t, recorder.Calls(), "no step after the failure should have run")
}
