package registry

import (
	"github.com/vk/sumgridgo/internal/config"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered handlers and definitions for a single
// application instance.
type Registry struct {
	HandlerRegistry    map[string]*RegisteredRunner
	DefinitionRegistry map[string]*config.RunnerDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		HandlerRegistry:    make(map[string]*RegisteredRunner),
		DefinitionRegistry: make(map[string]*config.RunnerDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded runner definitions from the
// config model into the registry for easy access during execution. Any
// definitions from a previous load are replaced, which allows the same
// registry to survive a configuration reload.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	r.DefinitionRegistry = make(map[string]*config.RunnerDefinition, len(model.Runners))
	for key, val := range model.Runners {
		r.DefinitionRegistry[key] = val
	}
}
