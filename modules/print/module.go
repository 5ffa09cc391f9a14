package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package. Out is
// where values are printed; it defaults to stdout.
type Module struct {
	Out io.Writer
}

// Input defines the arguments for the print runner.
type Input struct {
	Value map[string]string `sggo:"value"`
}

// Deps carries the injected dependencies for the print handler.
type Deps struct {
	Out io.Writer
}

// OnRunPrint is the handler for the 'print' runner's on_run lifecycle event.
func OnRunPrint(ctx context.Context, deps *Deps, input *Input) (any, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Printing value.", "entries", len(input.Value))

	if input.Value == nil {
		fmt.Fprintln(deps.Out, "      (null)")
		return nil, nil
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(input.Value))
	for k := range input.Value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(deps.Out, "      %s = %q\n", k, input.Value[k])
	}

	return nil, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	r.RegisterRunner("OnRunPrint", &registry.RegisteredRunner{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		NewDeps:   func() any { return &Deps{Out: out} },
		Fn:        OnRunPrint,
	})
}
