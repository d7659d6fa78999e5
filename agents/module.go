package agents

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/nets"
)

type Module struct {
	dscope.Module
	Nets    nets.Module
	Configs duetconfigs.Module
	Logs    logs.Module
}
