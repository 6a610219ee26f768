// Package schema checks raw report JSON against the embedded CUE definition
// before it is decoded.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed report.cue
var reportCUE string

// Violation is one schema mismatch.
type Violation struct {
	Path    string    `json:"path,omitempty"`
	Message string    `json:"message"`
	Pos     token.Pos `json:"-"`
}

func (v Violation) String() string {
	if v.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", v.Pos.Filename(), v.Pos.Line(), v.Pos.Column(), v.Message)
	}
	return v.Message
}

// ValidationError collects every violation found in a document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "schema violation: " + e.Violations[0].String()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%d schema violations:\n  %s", len(e.Violations), strings.Join(parts, "\n  "))
}

// Check validates data against #Report. filename is used in positions.
// Returns a *ValidationError for schema mismatches and a plain error when
// data is not JSON at all.
func Check(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(reportCUE, cue.Filename("report.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling report schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Report"))

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("building %s: %w", filename, err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError flattens a CUE error list, keeping the first position
// of each entry.
func toValidationError(err error) *ValidationError {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Violations: []Violation{{Message: err.Error()}}}
	}

	out := &ValidationError{Violations: make([]Violation, 0, len(errs))}
	for _, e := range errs {
		v := Violation{
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		}
		if positions := errors.Positions(e); len(positions) > 0 {
			v.Pos = positions[0]
		}
		out.Violations = append(out.Violations, v)
	}
	return out
}
