package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// wireReport mirrors the JSON document emitted by `flow check --json`.
// Fields not listed here (suppressions, loc, type, ...) are ignored.
type wireReport struct {
	FlowVersion string      `json:"flowVersion"`
	Passed      bool        `json:"passed"`
	Errors      []wireError `json:"errors"`
}

type wireError struct {
	Kind    string        `json:"kind"`
	Level   string        `json:"level"`
	Message []wireMessage `json:"message"`
	Extra   []wireExtra   `json:"extra"`
}

type wireExtra struct {
	Message  []wireMessage `json:"message"`
	Children []wireExtra   `json:"children"`
}

type wireMessage struct {
	Descr   string  `json:"descr"`
	Context *string `json:"context"` // nil => Comment
	Path    string  `json:"path"`
	Line    int     `json:"line"`
	EndLine int     `json:"endline"`
	Start   int     `json:"start"`
	End     int     `json:"end"`
}

// Parse decodes a Flow JSON report from data.
// The result is not validated; call Validate before rendering.
func Parse(data []byte) (*Report, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single Flow JSON report from r.
func Decode(r io.Reader) (*Report, error) {
	var w wireReport
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	rep := &Report{
		FlowVersion: w.FlowVersion,
		Passed:      w.Passed,
	}
	if w.Errors != nil {
		rep.Errors = make([]Error, len(w.Errors))
		for i, we := range w.Errors {
			rep.Errors[i] = Error{
				Kind:     we.Kind,
				Level:    Level(we.Level),
				Messages: convertMessages(we.Message),
				Extra:    convertExtras(we.Extra),
			}
		}
	}
	return rep, nil
}

func convertMessages(in []wireMessage) []Message {
	if in == nil {
		return nil
	}
	out := make([]Message, len(in))
	for i, m := range in {
		if m.Context == nil {
			out[i] = Comment{Descr: m.Descr, Path: m.Path}
			continue
		}
		out[i] = Blame{
			Descr:   m.Descr,
			Context: *m.Context,
			Path:    m.Path,
			Line:    m.Line,
			EndLine: m.EndLine,
			Start:   m.Start,
			End:     m.End,
		}
	}
	return out
}

// convertExtras keeps nil as nil and [] as an empty non-nil slice.
func convertExtras(in []wireExtra) []Extra {
	if in == nil {
		return nil
	}
	out := make([]Extra, len(in))
	for i, e := range in {
		out[i] = Extra{
			Messages: convertMessages(e.Message),
			Children: convertExtras(e.Children),
		}
	}
	return out
}
