package kernels

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/reusee/duet/logs"
	"go.starlark.net/starlark"
)

// Instance is the live object whose operations are defined by the last
// successfully rebound kernel region. The state dict persists across
// rebinds; only the operation set is swapped.
type Instance struct {
	mu    sync.Mutex
	state *starlark.Dict
	ops   starlark.StringDict
	print func(thread *starlark.Thread, msg string)
}

func (Module) Instance(
	logger logs.Logger,
) *Instance {
	return &Instance{
		state: starlark.NewDict(8),
		print: func(thread *starlark.Thread, msg string) {
			logger.Info("kernel print",
				"thread", thread.Name,
				"msg", msg,
			)
		},
	}
}

// State is the instance's stored field values, shared with kernel code
// as the predeclared `state` dict.
func (i *Instance) State() *starlark.Dict {
	return i.state
}

// Ops lists the callable operations of the current behavior, sorted.
func (i *Instance) Ops() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	var names []string
	for name, value := range i.ops {
		if _, ok := value.(starlark.Callable); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (i *Instance) HasOp(name string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	value, ok := i.ops[name]
	if !ok {
		return false
	}
	_, ok = value.(starlark.Callable)
	return ok
}

// Call invokes an operation of the current behavior.
func (i *Instance) Call(ctx context.Context, name string, args ...starlark.Value) (starlark.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i.mu.Lock()
	value, ok := i.ops[name]
	i.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no such operation: %s", name)
	}
	fn, ok := value.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("not an operation: %s", name)
	}
	thread := &starlark.Thread{
		Name:  "duet:" + name,
		Print: i.print,
	}
	ret, err := starlark.Call(thread, fn, starlark.Tuple(args), nil)
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}
	return ret, nil
}

// swap rebinds the whole operation set in one step. Callers observe
// either the old behavior or the new one, never a mix.
func (i *Instance) swap(ops starlark.StringDict) {
	i.mu.Lock()
	i.ops = ops
	i.mu.Unlock()
}
