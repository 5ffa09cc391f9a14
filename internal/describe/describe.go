// Package describe renders a human-readable summary of a runner's manifest
// contract: its inputs, defaults, and outputs.
package describe

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/sumgridgo/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Render writes the contract of a single runner definition to w. Inputs and
// outputs are sorted by name so the output is stable.
func Render(w io.Writer, def *config.RunnerDefinition) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Runner: %s\n", def.Type)
	if def.Description != "" {
		fmt.Fprintf(&b, "\n  %s\n", def.Description)
	}

	if len(def.Inputs) > 0 {
		b.WriteString("\nInputs:\n")
		names := make([]string, 0, len(def.Inputs))
		for name := range def.Inputs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			in := def.Inputs[name]
			fmt.Fprintf(&b, "  %s (%s%s)\n", name, in.Type.FriendlyName(), inputSuffix(in))
			if in.Description != "" {
				fmt.Fprintf(&b, "      %s\n", in.Description)
			}
		}
	}

	if len(def.Outputs) > 0 {
		b.WriteString("\nOutputs:\n")
		names := make([]string, 0, len(def.Outputs))
		for name := range def.Outputs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out := def.Outputs[name]
			fmt.Fprintf(&b, "  %s (%s)\n", name, out.Type.FriendlyName())
			if out.Description != "" {
				fmt.Fprintf(&b, "      %s\n", out.Description)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// inputSuffix annotates an input with its default value or requiredness.
func inputSuffix(in *config.InputDefinition) string {
	if in.Default != nil {
		return ", default: " + formatValue(*in.Default)
	}
	if !in.Optional {
		return ", required"
	}
	return ""
}

// formatValue renders a cty value the way a user would write it in a
// manifest.
func formatValue(val cty.Value) string {
	if val.IsNull() {
		return "null"
	}
	switch val.Type() {
	case cty.String:
		return strconv.Quote(val.AsString())
	case cty.Number:
		return val.AsBigFloat().Text('f', -1)
	case cty.Bool:
		return strconv.FormatBool(val.True())
	default:
		return val.Type().FriendlyName()
	}
}
