package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// WriterTo returns a definition for dscope Fork that redirects terminal logs to w.
func WriterTo(w io.Writer) func() Writer {
	return func() Writer {
		return w
	}
}
