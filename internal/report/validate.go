package report

import (
	"errors"
	"fmt"
)

// MalformedError reports an input-shape violation.
type MalformedError struct {
	// Path locates the offending value, e.g. "errors[2].message".
	Path string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed report: %s", e.Message)
	}
	return fmt.Sprintf("malformed report: %s: %s", e.Path, e.Message)
}

// IsMalformed returns true if err is or wraps a MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// Validate checks the invariants the renderers depend on and returns the
// first violation found. A passed report is valid regardless of Errors.
func Validate(r *Report) error {
	if r == nil {
		return &MalformedError{Message: "report is nil"}
	}
	if r.Passed {
		return nil
	}
	for i, e := range r.Errors {
		if len(e.Messages) == 0 {
			return &MalformedError{
				Path:    fmt.Sprintf("errors[%d].message", i),
				Message: "must contain at least one message",
			}
		}
		if !e.Level.Valid() {
			return &MalformedError{
				Path:    fmt.Sprintf("errors[%d].level", i),
				Message: fmt.Sprintf("unknown level %q (want %q or %q)", e.Level, LevelError, LevelWarning),
			}
		}
		for j, m := range e.Messages {
			if m == nil {
				return &MalformedError{
					Path:    fmt.Sprintf("errors[%d].message[%d]", i, j),
					Message: "message is nil",
				}
			}
		}
		if err := validateExtras(e.Extra, fmt.Sprintf("errors[%d].extra", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateExtras(extras []Extra, path string) error {
	for i, x := range extras {
		p := fmt.Sprintf("%s[%d]", path, i)
		for j, m := range x.Messages {
			if m == nil {
				return &MalformedError{
					Path:    fmt.Sprintf("%s.message[%d]", p, j),
					Message: "message is nil",
				}
			}
		}
		if err := validateExtras(x.Children, p+".children"); err != nil {
			return err
		}
	}
	return nil
}
