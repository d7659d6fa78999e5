package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/logs"
)

type Module struct {
	dscope.Module
	Configs duetconfigs.Module
	Logs    logs.Module
}
