package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/registry"
)

func TestRegisterRunner_DuplicatePanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	reg.RegisterRunner("OnRunAdder", &registry.RegisteredRunner{})

	// --- Act / Assert ---
	require.Panics(t, func() {
		reg.RegisterRunner("OnRunAdder", &registry.RegisteredRunner{})
	}, "registering the same handler name twice must panic")
}

func TestPopulateDefinitionsFromModel_ReplacesPreviousLoad(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()

	first := config.NewModel()
	first.Runners["adder"] = &config.RunnerDefinition{Type: "adder"}
	first.Runners["echo"] = &config.RunnerDefinition{Type: "echo"}

	second := config.NewModel()
	second.Runners["adder"] = &config.RunnerDefinition{Type: "adder", Description: "reloaded"}

	// --- Act ---
	reg.PopulateDefinitionsFromModel(first)
	reg.PopulateDefinitionsFromModel(second)

	// --- Assert ---
	require.Len(t, reg.DefinitionRegistry, 1, "definitions from the previous load must be dropped")
	require.Equal(t, "reloaded", reg.DefinitionRegistry["adder"].Description)
}
