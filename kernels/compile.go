package kernels

import (
	"errors"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// The kernel region is Python-shaped Starlark.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// compileKernel checks that src parses and resolves as a standalone unit.
// Free names are treated as predeclared so that only genuine syntax and
// structure problems are reported, matching a compile-only check.
func compileKernel(name string, src string) error {
	_, _, err := starlark.SourceProgramOptions(
		fileOptions,
		name,
		src,
		func(string) bool { return true },
	)
	if err != nil {
		return asSyntaxError(err)
	}
	return nil
}

func asSyntaxError(err error) *SyntaxError {
	var parseErr syntax.Error
	if errors.As(err, &parseErr) {
		return &SyntaxError{
			Line: int(parseErr.Pos.Line),
			Msg:  parseErr.Msg,
		}
	}
	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		return &SyntaxError{
			Line: int(resolveErrs[0].Pos.Line),
			Msg:  resolveErrs[0].Msg,
		}
	}
	return &SyntaxError{
		Msg: err.Error(),
	}
}
