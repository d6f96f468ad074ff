package result

import (
	"fmt"

	"github.com/zeebo/errs"
)

// captureTrace renders the failure and its originating call stack at the
// moment of capture: the message line followed by function:line frames.
// Because Err construction happens inside the capture adapters' recover
// boundary, a panicking function's own frames are still on the stack and
// land in the text. The rendering is done exactly once; nothing recomputes
// it later.
func captureTrace(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", errs.Wrap(err))
}
