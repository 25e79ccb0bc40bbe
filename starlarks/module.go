package starlarks

import (
	"github.com/reusee/dscope"
)

// Module depends on logs.Module for Logger.
type Module struct {
	dscope.Module
}
