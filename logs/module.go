package logs

import (
	"io"
	"os"
	"testing"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives text logs. Programs write their own output to stdout, so
// logs go to stderr, or to the test output under tests.
type Writer io.Writer

func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return t.Output()
	}
	return os.Stderr
}
