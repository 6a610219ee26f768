package render

import (
	"strings"

	"github.com/roach88/flowjunit/internal/report"
)

// extraHeading introduces the extra-information section. The trailing space
// is part of the reference output.
const extraHeading = "Extra information - "

// Title joins the description of every message with a single space.
func Title(e report.Error) string {
	parts := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		if m != nil {
			parts[i] = m.Text()
		}
	}
	return strings.Join(parts, " ")
}

// Error renders the full text block for one diagnostic:
//
//	Error: <title>
//
//	<messages, blank-line separated>
//
//	Extra information - <extras, newline separated>
//
// The extra section is omitted when e.Extra is empty.
func Error(e report.Error) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(Title(e))
	b.WriteString("\n\n")
	b.WriteString(messages(e.Messages, "\n\n"))

	if len(e.Extra) > 0 {
		b.WriteString("\n\n")
		b.WriteString(extraHeading)
		extras := make([]string, len(e.Extra))
		for i, x := range e.Extra {
			extras[i] = Extra(x)
		}
		b.WriteString(strings.Join(extras, "\n"))
	}
	return b.String()
}
