package report

// Report is a complete Flow diagnostic report.
type Report struct {
	// FlowVersion is the version tag of the tool that produced the report.
	FlowVersion string

	// Passed is true when the check found nothing. Errors is ignored when set.
	Passed bool

	// Errors holds the diagnostics in report order.
	Errors []Error
}

// Level is the severity of a diagnostic.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l == LevelError || l == LevelWarning
}

// Error is a single diagnostic.
type Error struct {
	// Kind is the diagnostic family ("infer", "parse", ...). Informational only.
	Kind string

	Level Level

	// Messages is never empty in a well-formed report. The first message
	// names the file the diagnostic belongs to.
	Messages []Message

	// Extra holds auxiliary explanation trees. May be nil.
	Extra []Extra
}

// Extra is a node of supplementary explanation attached to an Error.
type Extra struct {
	Messages []Message

	// Children is nil when the report had no "children" key and non-nil
	// (possibly empty) when it had one.
	Children []Extra
}

// Message is a sealed interface implemented only by Blame and Comment.
type Message interface {
	message() // Sealed

	// Text returns the message description.
	Text() string

	// File returns the source path the message refers to, or "" if unknown.
	File() string
}

// Blame is a message anchored to a source location.
// Start and End are 1-based column offsets into Context.
type Blame struct {
	Descr   string
	Context string
	Path    string
	Line    int
	EndLine int
	Start   int
	End     int
}

func (Blame) message() {}

// Text returns the blame description.
func (b Blame) Text() string { return b.Descr }

// File returns the blamed source path.
func (b Blame) File() string { return b.Path }

// Comment is a message with no rendered location.
// Path is kept from the report for naming purposes only.
type Comment struct {
	Descr string
	Path  string
}

func (Comment) message() {}

// Text returns the comment description.
func (c Comment) Text() string { return c.Descr }

// File returns the path recorded alongside the comment, usually "".
func (c Comment) File() string { return c.Path }
