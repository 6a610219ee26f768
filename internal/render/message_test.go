package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/flowjunit/internal/report"
)

func TestMessage_Blame(t *testing.T) {
	m := report.Blame{
		Descr:   "Cannot find X",
		Context: "const x = 1",
		Path:    "a.js",
		Line:    2,
		EndLine: 2,
		Start:   7,
		End:     7,
	}

	want := "a.js:2\n" +
		"const x = 1\n" +
		"      ^ Cannot find X"
	assert.Equal(t, want, Message(m))
}

func TestMessage_BlameUnderlineWidth(t *testing.T) {
	m := report.Blame{Descr: "d", Context: "0123456789", Path: "p", Line: 1, Start: 5, End: 9}

	lines := strings.Split(Message(m), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "    ^^^^^ d", lines[2])
}

func TestMessage_BlameNoCarets(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"end before start", 4, 2, "    d"},
		{"end one before start", 3, 2, "   d"},
		{"zero start", 0, -1, " d"},
		{"negative start clamps", -3, -5, " d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := report.Blame{Descr: "d", Context: "ctx", Path: "p", Line: 1, Start: tt.start, End: tt.end}
			lines := strings.Split(Message(m), "\n")
			assert.Equal(t, tt.want, lines[2])
		})
	}
}

func TestMessage_BlameEmptyContext(t *testing.T) {
	m := report.Blame{Descr: "d", Context: "", Path: "p", Line: 3, Start: 1, End: 1}
	assert.Equal(t, "p:3\n\n^ d", Message(m))
}

func TestMessage_Comment(t *testing.T) {
	m := report.Comment{Descr: "This type is incompatible with", Path: "ignored.js"}
	assert.Equal(t, "This type is incompatible with", Message(m))
}

func TestMessage_NoEscaping(t *testing.T) {
	m := report.Comment{Descr: `<a href="x">&amp;</a> ]]>`}
	assert.Equal(t, `<a href="x">&amp;</a> ]]>`, Message(m))
}

func TestMessage_Nil(t *testing.T) {
	assert.Empty(t, Message(nil))
}
