package app

import (
	"io"

	"github.com/vk/sumgridgo/internal/registry"
	"github.com/vk/sumgridgo/modules/print"
	"github.com/vk/sumgridgo/modules/sum"
)

// coreModules returns the built-in runner modules. Every module writes its
// user-facing output to out, which keeps handlers independent from the
// process stdout and lets callers capture what a run produced.
func coreModules(out io.Writer) []registry.Module {
	return []registry.Module{
		&sum.Module{Out: out},
		&print.Module{Out: out},
	}
}
