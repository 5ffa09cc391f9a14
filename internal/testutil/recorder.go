package testutil

import (
	"context"
	"reflect"
	"sync"

	"github.com/vk/sumgridgo/internal/registry"
)

// RecorderModule is a shared, self-contained module for execution-order
// tests. It records the id of every step that used it, in completion order.
type RecorderModule struct {
	mu    sync.Mutex
	calls []string
}

// Register registers the "record" runner's Go handler.
func (m *RecorderModule) Register(r *registry.Registry) {
	type recorderInput struct {
		ID string `sggo:"id"`
	}

	r.RegisterRunner("OnRunRecord", &registry.RegisteredRunner{
		NewInput:  func() any { return new(recorderInput) },
		InputType: reflect.TypeOf(recorderInput{}),
		NewDeps:   func() any { return new(struct{}) },
		Fn: func(_ context.Context, _ *struct{}, input *recorderInput) (any, error) {
			m.mu.Lock()
			m.calls = append(m.calls, input.ID)
			m.mu.Unlock()
			return nil, nil
		},
	})
}

// Calls returns the recorded step ids in the order they completed.
func (m *RecorderModule) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
