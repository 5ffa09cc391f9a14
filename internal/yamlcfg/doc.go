// Package yamlcfg provides a YAML front-end for the configuration model.
//
// It exists for environments where HCL is unwelcome: the same runners and
// steps can be declared in YAML, with arguments restricted to literal values.
// Literals are wrapped in static HCL expressions, so the engine and the
// shared converter never need to know which format a step came from.
// Cross-step output references require the HCL front-end.
package yamlcfg
