package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
	Debugs   debugs.Module
}
