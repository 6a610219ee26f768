package render

import (
	"strings"

	"github.com/roach88/flowjunit/internal/report"
)

// Extra renders an explanation tree depth-first, parent text before children.
//
// A non-nil Children slice always appends a blank-line separator followed by
// the joined children, even when the slice is empty.
func Extra(x report.Extra) string {
	text := messages(x.Messages, "\n\n")
	if x.Children == nil {
		return text
	}
	children := make([]string, len(x.Children))
	for i, c := range x.Children {
		children[i] = Extra(c)
	}
	return text + "\n\n" + strings.Join(children, "\n\n")
}
