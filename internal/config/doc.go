// Package config defines the format-agnostic configuration model and the
// interfaces that format-specific loaders must implement.
//
// The rest of the application only ever consumes the Model defined here; it
// never touches raw HCL or YAML syntax. This keeps the engine decoupled from
// any one configuration language and lets several loaders feed a single run.
package config
