package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/agents"
	"github.com/reusee/duet/patches"
	"github.com/reusee/duet/stores"
)

type Module struct {
	dscope.Module
	Agents  agents.Module
	Patches patches.Module
	Stores  stores.Module
}
