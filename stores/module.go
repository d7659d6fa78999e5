package stores

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/kernels"
	"github.com/reusee/duet/logs"
)

type Module struct {
	dscope.Module
	Kernels kernels.Module
	Configs duetconfigs.Module
	Logs    logs.Module
}
