package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flowjunit/internal/config"
	"github.com/roach88/flowjunit/internal/junit"
	"github.com/roach88/flowjunit/internal/report"
	"github.com/roach88/flowjunit/internal/schema"
	"github.com/roach88/flowjunit/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	Output       string
	Archive      string
	NoSchema     bool
	FailOnErrors bool
}

// ConversionSummary describes one finished conversion.
type ConversionSummary struct {
	Source   string `json:"source"`
	Output   string `json:"output"`
	Passed   bool   `json:"passed"`
	Tests    int    `json:"tests"`
	Failures int    `json:"failures"`
	RunID    string `json:"run_id,omitempty"`
}

// String renders the text-mode summary line.
func (s ConversionSummary) String() string {
	msg := fmt.Sprintf("✓ Wrote %d testcase(s), %d failing, from %s to %s", s.Tests, s.Failures, s.Source, s.Output)
	if s.RunID != "" {
		msg += fmt.Sprintf(" (run %s)", s.RunID)
	}
	return msg
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [report.json|-]",
		Short: "Convert a Flow JSON report into JUnit XML",
		Long: `Convert the output of "flow check --json" into a JUnit XML document.

The report is read from the given file, or stdin when omitted or "-".
The document is written to --output, or stdout. The report is checked
against the built-in schema first unless --no-schema is set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.Archive, "archive", "", "record the conversion in this SQLite archive")
	cmd.Flags().BoolVar(&opts.NoSchema, "no-schema", false, "skip the schema check")
	cmd.Flags().BoolVar(&opts.FailOnErrors, "fail-on-errors", false, "exit 1 when the report contains errors")

	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rootOpts.ConfigPath)
	if err != nil {
		return newFormatter(rootOpts, cmd, cmd.ErrOrStderr()).fail(ExitCommandError, ErrCodeConfig, err.Error(), nil)
	}
	applyConvertConfig(cmd, opts, cfg)

	// Keep stdout clean for the document when it is written there.
	summaryWriter := cmd.OutOrStdout()
	if isStdio(opts.Output) {
		summaryWriter = cmd.ErrOrStderr()
	}
	formatter := newFormatter(rootOpts, cmd, summaryWriter)
	log := formatter.Logger

	data, source, err := readInput(cmd, args)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeReadFailed, err.Error(), nil)
	}
	log.Debug().Str("source", source).Int("bytes", len(data)).Msg("read report")

	if !opts.NoSchema {
		if err := schema.Check(source, data); err != nil {
			return schemaFailure(formatter, err)
		}
		log.Debug().Msg("schema check passed")
	}

	rep, err := report.Parse(data)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeDecodeFailed, err.Error(), nil)
	}

	assembler := junit.NewAssembler(cfg.Suite)
	doc, err := assembler.Transform(rep)
	if err != nil {
		if report.IsMalformed(err) {
			return formatter.fail(ExitCommandError, ErrCodeMalformed, err.Error(), nil)
		}
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
	}

	summary := summarize(rep)
	summary.Source = source
	summary.Output = stdioName
	if !isStdio(opts.Output) {
		summary.Output = opts.Output
	}

	if err := writeOutput(cmd, opts.Output, doc); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
	}
	log.Debug().Str("output", summary.Output).Int("tests", summary.Tests).Msg("wrote junit document")

	if opts.Archive != "" {
		runID, err := archiveConversion(cmd, opts.Archive, data, doc, rep, summary)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeArchive, err.Error(), nil)
		}
		summary.RunID = runID
		log.Debug().Str("archive", opts.Archive).Str("run_id", runID).Msg("archived conversion")
	}

	if err := formatter.Success(summary); err != nil {
		return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
	}

	if opts.FailOnErrors && summary.Failures > 0 {
		message := fmt.Sprintf("report contains %d error(s)", summary.Failures)
		if formatter.Format != "json" {
			fmt.Fprintf(formatter.GetErrWriter(), "✗ %s\n", message)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeReportFailed, message))
	}
	return nil
}

// applyConvertConfig fills unset flags from the config file.
func applyConvertConfig(cmd *cobra.Command, opts *ConvertOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("output") && cfg.Output != "" {
		opts.Output = cfg.Output
	}
	if !flags.Changed("archive") && cfg.Archive != "" {
		opts.Archive = cfg.Archive
	}
	if !flags.Changed("no-schema") {
		opts.NoSchema = !cfg.SchemaCheckEnabled()
	}
	if !flags.Changed("fail-on-errors") {
		opts.FailOnErrors = cfg.FailOnErrors
	}
}

// summarize counts testcases the way the document does.
func summarize(rep *report.Report) ConversionSummary {
	if rep.Passed {
		return ConversionSummary{Passed: true, Tests: 1}
	}
	return ConversionSummary{Tests: len(rep.Errors), Failures: len(rep.Errors)}
}

func schemaFailure(formatter *OutputFormatter, err error) error {
	var ve *schema.ValidationError
	if errors.As(err, &ve) {
		return formatter.fail(ExitCommandError, ErrCodeSchema, err.Error(), ve.Violations)
	}
	return formatter.fail(ExitCommandError, ErrCodeDecodeFailed, err.Error(), nil)
}

func archiveConversion(cmd *cobra.Command, path string, data []byte, doc string, rep *report.Report, summary ConversionSummary) (string, error) {
	s, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer s.Close()

	c, err := s.Record(cmd.Context(), store.Conversion{
		Source:       summary.Source,
		FlowVersion:  rep.FlowVersion,
		Passed:       summary.Passed,
		Tests:        summary.Tests,
		Failures:     summary.Failures,
		ReportDigest: store.Digest(data),
		XML:          doc,
	})
	if err != nil {
		return "", err
	}
	return c.RunID, nil
}
