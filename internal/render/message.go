package render

import (
	"strconv"
	"strings"

	"github.com/roach88/flowjunit/internal/report"
)

// Message renders a single message. A Blame becomes a three-line block
// (location, source line, caret underline followed by the description).
// A Comment becomes its description verbatim. A nil Message renders as
// the empty string; report.Validate rejects nil messages before rendering.
func Message(m report.Message) string {
	switch v := m.(type) {
	case report.Blame:
		return blame(v)
	case report.Comment:
		return v.Descr
	default:
		return ""
	}
}

func blame(b report.Blame) string {
	var sb strings.Builder
	sb.WriteString(b.Path)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(b.Line))
	sb.WriteByte('\n')
	sb.WriteString(b.Context)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", max(0, b.Start-1)))
	if n := b.End - b.Start + 1; n > 0 {
		sb.WriteString(strings.Repeat("^", n))
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Descr)
	return sb.String()
}

// messages renders ms and joins them with sep.
func messages(ms []report.Message, sep string) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = Message(m)
	}
	return strings.Join(parts, sep)
}
