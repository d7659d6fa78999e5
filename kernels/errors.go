package kernels

import "fmt"

// StructureError reports a document whose marker line is absent or
// duplicated.
type StructureError struct {
	Msg string
}

func (e *StructureError) Error() string {
	return "structure broken: " + e.Msg
}

// SyntaxError reports a kernel region that does not compile.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error line %d: %s", e.Line, e.Msg)
	}
	return "syntax error: " + e.Msg
}

// ReloadError reports a kernel that compiled but failed during execution
// or rebinding. The previous behavior stays active.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string {
	return "reload failed: " + e.Err.Error()
}

func (e *ReloadError) Unwrap() error {
	return e.Err
}
