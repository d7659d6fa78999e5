package kernels

import (
	"context"

	"github.com/reusee/duet/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Rebind compiles and executes a kernel region in a fresh namespace and
// swaps the instance's operation set to the result. On any compile or
// execution failure the instance is left untouched and a ReloadError is
// returned. The globals are not frozen: the kernel's state dict must
// stay mutable across calls.
type Rebind func(ctx context.Context, kernel string) error

func (Module) Rebind(
	instance *Instance,
	logger logs.Logger,
) Rebind {
	return func(ctx context.Context, kernel string) error {

		predeclared := starlark.StringDict{
			"state": instance.state,
			"log": starlarkutil.MakeFunc("log", func(msg string) {
				logger.InfoContext(ctx, "kernel log",
					"msg", msg,
				)
			}),
		}

		_, prog, err := starlark.SourceProgramOptions(
			fileOptions,
			"kernel",
			kernel,
			func(name string) bool {
				_, ok := predeclared[name]
				return ok
			},
		)
		if err != nil {
			return logs.WrapSpan(ctx, &ReloadError{Err: asSyntaxError(err)})
		}

		thread := &starlark.Thread{
			Name:  "duet:reload",
			Print: instance.print,
		}
		globals, err := prog.Init(thread, predeclared)
		if err != nil {
			return logs.WrapSpan(ctx, &ReloadError{Err: err})
		}

		instance.swap(globals)
		logger.InfoContext(ctx, "kernel rebound",
			"ops", instance.Ops(),
		)
		return nil
	}
}
