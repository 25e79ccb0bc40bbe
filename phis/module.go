package phis

import (
	"github.com/reusee/dscope"
)

// Module depends on logs.Module for Logger and NewSpan.
type Module struct {
	dscope.Module
}
