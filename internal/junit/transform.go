package junit

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/flowjunit/internal/render"
	"github.com/roach88/flowjunit/internal/report"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n"

// Assembler builds JUnit documents with a fixed set of suite identifiers.
type Assembler struct {
	suite Suite
}

// NewAssembler returns an Assembler for suite. Empty fields use DefaultSuite.
func NewAssembler(suite Suite) *Assembler {
	return &Assembler{suite: suite.withDefaults()}
}

// Suite returns the identifiers in effect.
func (a *Assembler) Suite() Suite {
	return a.suite
}

// Transform converts r with the default suite identifiers.
func Transform(r *report.Report) (string, error) {
	return NewAssembler(DefaultSuite()).Transform(r)
}

// Transform converts r into a JUnit XML document.
//
// A passed report yields one success testcase. Otherwise every error yields
// one failing testcase, in report order. Returns a *report.MalformedError
// if r violates the report invariants; no partial document is produced.
func (a *Assembler) Transform(r *report.Report) (string, error) {
	if err := report.Validate(r); err != nil {
		return "", fmt.Errorf("cannot convert report: %w", err)
	}

	var fragments []string
	if r.Passed {
		fragments = []string{a.successCase()}
	} else {
		fragments = make([]string, len(r.Errors))
		for i, e := range r.Errors {
			fragments[i] = a.failureCase(e)
		}
	}

	return a.envelope(fragments), nil
}

func (a *Assembler) successCase() string {
	var b strings.Builder
	b.WriteString("\n    <testcase time=\"0\" classname=\"")
	writeAttr(&b, a.suite.SuccessName)
	b.WriteString("\" id=\"")
	writeAttr(&b, a.suite.SuccessID)
	b.WriteString("\" name=\"")
	writeAttr(&b, a.suite.SuccessName)
	b.WriteString("\"></testcase>")
	return b.String()
}

func (a *Assembler) failureCase(e report.Error) string {
	path := e.Messages[0].File()

	var b strings.Builder
	b.WriteString("\n    <testcase time=\"0\" classname=\"")
	writeAttr(&b, path)
	b.WriteString("\" id=\"")
	writeAttr(&b, a.suite.ErrorID)
	b.WriteString("\" name=\"")
	writeAttr(&b, path)
	b.WriteString("\">\n      <failure type=\"")
	writeAttr(&b, upper(string(e.Level)))
	b.WriteString("\" message=\"")
	writeAttr(&b, render.Title(e))
	b.WriteString("\">\n        <![CDATA[\n")
	b.WriteString(cdataSafe(render.Error(e)))
	b.WriteString("\n        ]]>\n      </failure>\n    </testcase>")
	return b.String()
}

// envelope wraps the testcase fragments. errors is the fragment count,
// matching the reference reporter even for a passing run.
func (a *Assembler) envelope(fragments []string) string {
	n := strconv.Itoa(len(fragments))

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<testsuites id=\"")
	writeAttr(&b, a.suite.SuitesID)
	b.WriteString("\">\n  <testsuite\n    package=\"")
	writeAttr(&b, a.suite.Package)
	b.WriteString("\"\n    tests=\"" + n + "\"\n")
	b.WriteString("    time=\"0\"\n")
	b.WriteString("    skipped=\"0\"\n")
	b.WriteString("    errors=\"" + n + "\"\n")
	b.WriteString("    id=\"")
	writeAttr(&b, a.suite.ID)
	b.WriteString("\"\n    name=\"")
	writeAttr(&b, a.suite.Name)
	b.WriteString("\"\n  >")
	for _, f := range fragments {
		b.WriteString(f)
	}
	b.WriteString("\n  </testsuite>\n</testsuites>\n")
	return b.String()
}

// upper is Unicode-aware like the reference reporter's case mapping.
// A Caser is stateful, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
