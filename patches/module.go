package patches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/kernels"
)

type Module struct {
	dscope.Module
	Kernels kernels.Module
}
