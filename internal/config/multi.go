package config

import (
	"context"
	"fmt"

	"github.com/vk/sumgridgo/internal/ctxlog"
)

// MultiLoader fans a single Load call out to several format-specific loaders
// and merges their results into one model. Loaders run in the order they
// were given, so a later loader's runner definitions win over an earlier
// loader's when both declare the same type.
type MultiLoader struct {
	loaders []Loader
}

// NewMultiLoader creates a loader that combines the given loaders.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load invokes every underlying loader with the same paths and merges the
// resulting models. The converter of the first loader that produced one is
// returned; all loaders in a set are expected to emit expressions the shared
// converter can evaluate.
func (l *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Multi-format loader started.", "loader_count", len(l.loaders))

	merged := NewModel()
	var converter Converter

	for _, loader := range l.loaders {
		model, conv, err := loader.Load(ctx, paths...)
		if err != nil {
			return nil, nil, err
		}
		merged.Merge(model)
		if converter == nil {
			converter = conv
		}
	}

	if converter == nil {
		return nil, nil, fmt.Errorf("no configuration loader produced a converter")
	}

	logger.Debug("Multi-format loading complete.", "runners", len(merged.Runners), "steps", len(merged.Grid.Steps))
	return merged, converter, nil
}
