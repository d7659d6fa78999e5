package duetconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
