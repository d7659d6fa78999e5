package patches

import "fmt"

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// NotFoundError reports an edit whose Old snippet does not occur in the
// current text. The pattern is clipped to bound message size.
type NotFoundError struct {
	Pattern string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("edit not found: %q", clip(e.Pattern, 30))
}

// AmbiguousError reports an edit whose Old snippet occurs more than once.
type AmbiguousError struct {
	Pattern string
	Count   int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("edit ambiguous (%dx): %q", e.Count, clip(e.Pattern, 20))
}
