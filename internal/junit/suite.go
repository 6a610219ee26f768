package junit

// Suite holds the fixed identifiers written into the document.
// Empty fields fall back to DefaultSuite values.
type Suite struct {
	// SuitesID is the id of the <testsuites> element.
	SuitesID string `yaml:"suites_id"`

	// Package is the package attribute of the <testsuite> element.
	Package string `yaml:"package"`

	// ID is the id of the <testsuite> element.
	ID string `yaml:"id"`

	// Name is the name of the <testsuite> element.
	Name string `yaml:"name"`

	// ErrorID is the id of every failing <testcase>.
	ErrorID string `yaml:"error_id"`

	// SuccessID is the id of the synthetic passing <testcase>.
	SuccessID string `yaml:"success_id"`

	// SuccessName is the classname and name of the passing <testcase>.
	SuccessName string `yaml:"success_name"`
}

// DefaultSuite returns the identifiers used by the reference Flow reporter.
func DefaultSuite() Suite {
	return Suite{
		SuitesID:    "flow",
		Package:     "org.flow",
		ID:          "flow-suite",
		Name:        "Flow type check",
		ErrorID:     "flow-error",
		SuccessID:   "flow-success",
		SuccessName: "flow",
	}
}

// withDefaults returns s with empty fields filled from DefaultSuite.
func (s Suite) withDefaults() Suite {
	d := DefaultSuite()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.SuitesID, d.SuitesID)
	fill(&s.Package, d.Package)
	fill(&s.ID, d.ID)
	fill(&s.Name, d.Name)
	fill(&s.ErrorID, d.ErrorID)
	fill(&s.SuccessID, d.SuccessID)
	fill(&s.SuccessName, d.SuccessName)
	return s
}
