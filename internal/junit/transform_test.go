package junit

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flowjunit/internal/render"
	"github.com/roach88/flowjunit/internal/report"
)

// Parse-back shapes for generated documents.
type xmlSuites struct {
	XMLName xml.Name   `xml:"testsuites"`
	ID      string     `xml:"id,attr"`
	Suites  []xmlSuite `xml:"testsuite"`
}

type xmlSuite struct {
	Package string    `xml:"package,attr"`
	Tests   int       `xml:"tests,attr"`
	Errors  int       `xml:"errors,attr"`
	Skipped int       `xml:"skipped,attr"`
	Time    string    `xml:"time,attr"`
	ID      string    `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	Cases   []xmlCase `xml:"testcase"`
}

type xmlCase struct {
	Time      string      `xml:"time,attr"`
	Classname string      `xml:"classname,attr"`
	ID        string      `xml:"id,attr"`
	Name      string      `xml:"name,attr"`
	Failure   *xmlFailure `xml:"failure"`
}

type xmlFailure struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

func parseDoc(t *testing.T, doc string) xmlSuites {
	t.Helper()
	var out xmlSuites
	require.NoError(t, xml.Unmarshal([]byte(doc), &out), "document must be well-formed:\n%s", doc)
	require.Len(t, out.Suites, 1)
	return out
}

func loadReport(t *testing.T, name string) *report.Report {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "reports", name+".json"))
	require.NoError(t, err)
	r, err := report.Parse(data)
	require.NoError(t, err)
	return r
}

// To regenerate golden files, run:
//
//	go test ./internal/junit -update
func TestTransform_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, name := range []string{"passed", "single_blame", "mixed", "special_chars"} {
		t.Run(name, func(t *testing.T) {
			out, err := Transform(loadReport(t, name))
			require.NoError(t, err)
			g.Assert(t, name, []byte(out))
		})
	}
}

func TestTransform_Passed(t *testing.T) {
	out, err := Transform(&report.Report{Passed: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" ?>`+"\n"))
	assert.Contains(t, out, `<testcase time="0" classname="flow" id="flow-success" name="flow"></testcase>`)
	assert.NotContains(t, out, "<failure")

	doc := parseDoc(t, out)
	assert.Equal(t, "flow", doc.ID)
	s := doc.Suites[0]
	assert.Equal(t, 1, s.Tests)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 0, s.Skipped)
	require.Len(t, s.Cases, 1)
	assert.Nil(t, s.Cases[0].Failure)
}

func TestTransform_PassedIgnoresErrors(t *testing.T) {
	r := &report.Report{
		Passed: true,
		Errors: []report.Error{{Level: report.LevelError, Messages: []report.Message{report.Comment{Descr: "x"}}}},
	}
	out, err := Transform(r)
	require.NoError(t, err)
	assert.NotContains(t, out, "flow-error")
}

func TestTransform_ErrorCounts(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		r := &report.Report{}
		for i := 0; i < n; i++ {
			r.Errors = append(r.Errors, report.Error{
				Level:    report.LevelWarning,
				Messages: []report.Message{report.Blame{Descr: "d", Context: "c", Path: "f.js", Line: i + 1, Start: 1, End: 1}},
			})
		}

		out, err := Transform(r)
		require.NoError(t, err)

		s := parseDoc(t, out).Suites[0]
		assert.Equal(t, n, s.Tests)
		assert.Equal(t, n, s.Errors)
		assert.Len(t, s.Cases, n)
	}
}

func TestTransform_FailureAttributes(t *testing.T) {
	r := &report.Report{Errors: []report.Error{{
		Kind:  "infer",
		Level: report.LevelError,
		Messages: []report.Message{
			report.Blame{Descr: "Cannot find X", Context: "const x = 1", Path: "a.js", Line: 2, Start: 7, End: 7},
		},
	}}}

	out, err := Transform(r)
	require.NoError(t, err)

	c := parseDoc(t, out).Suites[0].Cases[0]
	assert.Equal(t, "a.js", c.Classname)
	assert.Equal(t, "a.js", c.Name)
	assert.Equal(t, "flow-error", c.ID)
	require.NotNil(t, c.Failure)
	assert.Equal(t, "ERROR", c.Failure.Type)
	assert.Equal(t, "Cannot find X", c.Failure.Message)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(c.Failure.Text), "Error: Cannot find X"))
}

func TestTransform_CDATARoundTrip(t *testing.T) {
	r := loadReport(t, "special_chars")

	out, err := Transform(r)
	require.NoError(t, err)

	c := parseDoc(t, out).Suites[0].Cases[0]
	assert.Equal(t, "src/<e>.js", c.Classname)
	assert.Equal(t, render.Title(r.Errors[0]), c.Failure.Message)
	assert.Equal(t, render.Error(r.Errors[0]), strings.TrimSpace(c.Failure.Text))
}

func TestTransform_ControlCharsInBody(t *testing.T) {
	r := &report.Report{Errors: []report.Error{{
		Level: report.LevelError,
		Messages: []report.Message{
			report.Blame{Descr: "bad\x1b[0m", Context: "a\x0cb", Path: "f.js", Line: 1, EndLine: 1, Start: 1, End: 1},
		},
	}}}

	out, err := Transform(r)
	require.NoError(t, err)

	c := parseDoc(t, out).Suites[0].Cases[0]
	require.NotNil(t, c.Failure)
	assert.Contains(t, c.Failure.Text, "a\uFFFDb")
	assert.Contains(t, c.Failure.Text, "bad\uFFFD[0m")
	assert.Equal(t, "bad\uFFFD[0m", c.Failure.Message)
}

func TestTransform_FirstMessageComment(t *testing.T) {
	r := &report.Report{Errors: []report.Error{{
		Level:    report.LevelError,
		Messages: []report.Message{report.Comment{Descr: "lib error", Path: "lib/core.js"}},
	}}}

	out, err := Transform(r)
	require.NoError(t, err)

	c := parseDoc(t, out).Suites[0].Cases[0]
	assert.Equal(t, "lib/core.js", c.Classname)
}

func TestTransform_Malformed(t *testing.T) {
	r := &report.Report{Errors: []report.Error{{Level: report.LevelError}}}

	out, err := Transform(r)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, report.IsMalformed(err))
	assert.Contains(t, err.Error(), "errors[0].message")
}

func TestTransform_NilReport(t *testing.T) {
	_, err := Transform(nil)
	require.Error(t, err)
	assert.True(t, report.IsMalformed(err))
}

func TestAssembler_CustomSuite(t *testing.T) {
	a := NewAssembler(Suite{Name: "Typecheck", Package: "com.example"})

	assert.Equal(t, "Typecheck", a.Suite().Name)
	assert.Equal(t, "flow-suite", a.Suite().ID)

	out, err := a.Transform(&report.Report{Passed: true})
	require.NoError(t, err)

	s := parseDoc(t, out).Suites[0]
	assert.Equal(t, "Typecheck", s.Name)
	assert.Equal(t, "com.example", s.Package)
	assert.Equal(t, "flow-suite", s.ID)
	assert.Equal(t, "flow", s.Cases[0].Name)
}

func TestTransform_Deterministic(t *testing.T) {
	r := loadReport(t, "mixed")

	first, err := Transform(r)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := Transform(r)
			assert.NoError(t, err)
			assert.Equal(t, first, out)
		}()
	}
	wg.Wait()
}
