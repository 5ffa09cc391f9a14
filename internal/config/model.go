package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration, including all runner manifests and the
// execution grid.
type Model struct {
	Runners map[string]*RunnerDefinition
	Grid    *Grid
}

// NewModel creates an empty configuration model with all collections
// initialized.
func NewModel() *Model {
	return &Model{
		Runners: make(map[string]*RunnerDefinition),
		Grid:    &Grid{},
	}
}

// Merge folds another model into this one. Runner definitions with the same
// type replace earlier ones; grid steps are appended in order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	for key, val := range other.Runners {
		m.Runners[key] = val
	}
	if other.Grid != nil {
		m.Grid.Steps = append(m.Grid.Steps, other.Grid.Steps...)
	}
}

// Grid represents the user's execution definition. Steps run sequentially
// in the order they appear here.
type Grid struct {
	Steps []*Step
}

// Step is the format-agnostic representation of a `step` block.
type Step struct {
	RunnerType string
	Name       string
	Arguments  map[string]hcl.Expression
}

// --- Runner Manifest Models ---

// RunnerDefinition is the format-agnostic representation of a runner's manifest.
type RunnerDefinition struct {
	Type        string
	Description string
	Lifecycle   *Lifecycle
	Inputs      map[string]*InputDefinition
	Outputs     map[string]*OutputDefinition
}

// Lifecycle maps a runner's events to Go handler names.
type Lifecycle struct {
	OnRun string
}

// InputDefinition defines a single input argument for a runner. An input
// with a non-null default is implicitly optional.
type InputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}

// OutputDefinition defines a single output value produced by a runner.
type OutputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
}
