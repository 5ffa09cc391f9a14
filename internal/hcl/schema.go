// This file defines the HCL-facing schema structs. They mirror the raw block
// layout of manifest and grid files and are translated into the
// format-agnostic config model before the rest of the engine sees them.

package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all possible top-level blocks from any configuration
// file. Manifests and grids share one schema, so a runner definition and the
// step that uses it may live in the same file.
type fileRoot struct {
	Runners []*RunnerDefinition `hcl:"runner,block"`
	Steps   []*Step             `hcl:"step,block"`
	Remain  hcl.Body            `hcl:",remain"`
}

// StepArgs represents the content of the 'arguments' block within a step.
// The attributes stay as raw expressions until execution time.
type StepArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Step represents a `step` block from a user's grid file. It is a runnable
// instance of a defined runner.
type Step struct {
	RunnerType string    `hcl:"runner_type,label"`
	Name       string    `hcl:"instance_name,label"`
	Arguments  *StepArgs `hcl:"arguments,block"`
}

// Lifecycle defines the mapping from a runner's lifecycle event to a
// registered Go handler function.
type Lifecycle struct {
	OnRun string `hcl:"on_run,optional"`
}

// InputDefinition defines a single input variable for a runner. The default
// is kept as an expression so that translation can evaluate it once and
// decide whether the input is optional.
type InputDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
}

// OutputDefinition defines a single output value produced by a runner.
type OutputDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// RunnerDefinition represents the HCL manifest for a runnable `runner` type.
type RunnerDefinition struct {
	Type        string              `hcl:"type,label"`
	Description string              `hcl:"description,optional"`
	Lifecycle   *Lifecycle          `hcl:"lifecycle,block"`
	Inputs      []*InputDefinition  `hcl:"input,block"`
	Outputs     []*OutputDefinition `hcl:"output,block"`
}
