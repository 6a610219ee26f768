// Package testutil holds fixture builders shared by package tests.
package testutil

import (
	"github.com/roach88/flowjunit/internal/report"
)

// Blame builds a Blame message on a single line.
func Blame(path string, line int, context string, start, end int, descr string) report.Blame {
	return report.Blame{
		Descr:   descr,
		Context: context,
		Path:    path,
		Line:    line,
		EndLine: line,
		Start:   start,
		End:     end,
	}
}

// Comment builds a Comment message.
func Comment(descr string) report.Comment {
	return report.Comment{Descr: descr}
}

// Diagnostic builds an error-level infer diagnostic from msgs.
func Diagnostic(msgs ...report.Message) report.Error {
	return report.Error{Kind: "infer", Level: report.LevelError, Messages: msgs}
}

// Failing builds a failed report holding errs.
func Failing(errs ...report.Error) *report.Report {
	return &report.Report{FlowVersion: "0.98.0", Errors: errs}
}

// Passing builds a passed report.
func Passing() *report.Report {
	return &report.Report{FlowVersion: "0.98.0", Passed: true}
}

// FailingJSON is a one-error report document.
const FailingJSON = `{
  "flowVersion": "0.98.0",
  "passed": false,
  "errors": [
    {
      "kind": "infer",
      "level": "error",
      "suppressions": [],
      "message": [
        {"type": "Blame", "descr": "Cannot find X", "context": "const x = 1", "path": "a.js", "line": 2, "endline": 2, "start": 7, "end": 7}
      ]
    }
  ]
}`

// PassingJSON is a passed report document.
const PassingJSON = `{"flowVersion": "0.98.0", "passed": true, "errors": []}`
