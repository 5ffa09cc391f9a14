// Package executor runs the steps of a loaded grid.
//
// Execution is deliberately sequential: steps run one at a time in the order
// they were declared, and the output of each completed step is published into
// the HCL evaluation context under step.<runner_type>.<instance_name>.output
// so later steps can consume it. The first failing step aborts the run.
//
// Handlers are invoked through reflection with their dependencies and decoded
// input passed as direct parameters, so the same functions stay trivially
// callable from plain Go tests.
package executor
