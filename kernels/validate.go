package kernels

import (
	"github.com/reusee/duet/docs"
)

// Validate checks a candidate document: exactly one marker line, and a
// kernel region that compiles. It never mutates or executes anything.
type Validate func(content string) error

func (Module) Validate() Validate {
	return func(content string) error {
		switch n := docs.MarkerCount(content); {
		case n == 0:
			return &StructureError{Msg: "marker missing"}
		case n > 1:
			return &StructureError{Msg: "multiple markers"}
		}
		return compileKernel("kernel", docs.KernelOf(content))
	}
}
