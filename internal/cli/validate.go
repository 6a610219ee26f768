package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/flowjunit/internal/report"
	"github.com/roach88/flowjunit/internal/schema"
)

// ValidationIssue is one problem found in a report.
type ValidationIssue struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Source string            `json:"source"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [report.json|-]",
		Short: "Check a Flow JSON report without converting it",
		Long: `Check a Flow JSON report against the built-in schema and the
invariants conversion depends on (every error has at least one message,
levels are "error" or "warning").`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(opts, cmd, cmd.OutOrStdout())

	data, source, err := readInput(cmd, args)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeReadFailed, err.Error(), nil)
	}
	formatter.Logger.Debug().Str("source", source).Msg("validating report")

	issues, err := validateReport(source, data)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeDecodeFailed, err.Error(), nil)
	}

	if len(issues) > 0 {
		return outputValidationIssues(formatter, source, issues)
	}
	return outputValidateSuccess(formatter, source)
}

// validateReport returns the schema violations, or the first shape
// violation when the schema passes. err is set only for unparseable input.
func validateReport(source string, data []byte) ([]ValidationIssue, error) {
	if err := schema.Check(source, data); err != nil {
		var ve *schema.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		issues := make([]ValidationIssue, len(ve.Violations))
		for i, v := range ve.Violations {
			issues[i] = ValidationIssue{Code: ErrCodeSchema, Path: v.Path, Message: v.String()}
		}
		return issues, nil
	}

	rep, err := report.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := report.Validate(rep); err != nil {
		var me *report.MalformedError
		if errors.As(err, &me) {
			return []ValidationIssue{{Code: ErrCodeMalformed, Path: me.Path, Message: me.Message}}, nil
		}
		return nil, err
	}
	return nil, nil
}

// outputValidateSuccess outputs successful validation result.
func outputValidateSuccess(formatter *OutputFormatter, source string) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Source: source})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is a valid report\n", source)
	return nil
}

// outputValidationIssues outputs every issue and returns an ExitFailure error.
func outputValidationIssues(formatter *OutputFormatter, source string, issues []ValidationIssue) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Source: source,
				Errors: issues,
			},
			Error: &CLIError{
				Code:    issues[0].Code,
				Message: issues[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode JSON", err)
		}
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %s has %d problem(s):\n", source, len(issues))
		for _, issue := range issues {
			if issue.Path != "" {
				fmt.Fprintf(formatter.Writer, "  [%s] %s: %s\n", issue.Code, issue.Path, issue.Message)
			} else {
				fmt.Fprintf(formatter.Writer, "  [%s] %s\n", issue.Code, issue.Message)
			}
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", issues[0].Code, issues[0].Message))
}
