package main

import (
	"fmt"

	"github.com/reusee/e5"
)

var (
	pt   = fmt.Printf
	wrap = e5.Wrap.With(e5.WrapStacktrace)
)

func ce(err error) {
	if err != nil {
		panic(wrap(err))
	}
}
