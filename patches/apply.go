package patches

import (
	"fmt"
	"strings"

	"github.com/reusee/duet/docs"
	"github.com/reusee/duet/kernels"
)

// Apply applies edits in order against the evolving intermediate text, so
// a later edit may target text introduced by an earlier one. The batch is
// all-or-nothing: on any failure the original source is returned
// unmodified along with the error. After all edits succeed the result is
// re-validated; a batch that would break the document structure is
// discarded the same way. kernelChanged reports whether the text strictly
// above the marker differs between source and the returned text.
type Apply func(source string, edits []Edit) (newSource string, kernelChanged bool, err error)

func (Module) Apply(
	validate kernels.Validate,
) Apply {
	return func(source string, edits []Edit) (string, bool, error) {
		if len(edits) == 0 {
			return source, false, nil
		}

		current := source
		for _, edit := range edits {
			switch n := strings.Count(current, edit.Old); {
			case n == 0:
				return source, false, &NotFoundError{Pattern: edit.Old}
			case n > 1:
				return source, false, &AmbiguousError{Pattern: edit.Old, Count: n}
			}
			current = strings.Replace(current, edit.Old, edit.New, 1)
		}

		if err := validate(current); err != nil {
			return source, false, fmt.Errorf("edit would cause: %w", err)
		}

		kernelChanged := docs.KernelOf(source) != docs.KernelOf(current)
		return current, kernelChanged, nil
	}
}
