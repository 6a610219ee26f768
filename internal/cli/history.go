package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/flowjunit/internal/config"
	"github.com/roach88/flowjunit/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	Archive string
	Limit   int
	RunID   string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived conversions",
		Long: `List conversions recorded with "convert --archive", newest first.
With --run, print the archived JUnit document of that run instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Archive, "archive", "", "SQLite archive path (default from config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of entries (0 for all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "print the document archived for this run id")

	return cmd
}

func runHistory(rootOpts *RootOptions, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd, cmd.OutOrStdout())

	cfg, err := config.Load(rootOpts.ConfigPath)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeConfig, err.Error(), nil)
	}
	if opts.Archive == "" {
		opts.Archive = cfg.Archive
	}
	if opts.Archive == "" {
		return formatter.fail(ExitCommandError, ErrCodeArchive, "no archive given: use --archive or set archive in the config file", nil)
	}

	s, err := store.Open(opts.Archive)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeArchive, err.Error(), nil)
	}
	defer s.Close()
	formatter.Logger.Debug().Str("archive", opts.Archive).Msg("opened archive")

	if opts.RunID != "" {
		c, err := s.Get(cmd.Context(), opts.RunID)
		if errors.Is(err, store.ErrNotFound) {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
		}
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeArchive, err.Error(), nil)
		}
		if formatter.Format == "json" {
			return formatter.Success(struct {
				store.Conversion
				XML string `json:"junit_xml"`
			}{c, c.XML})
		}
		if _, err := io.WriteString(formatter.Writer, c.XML); err != nil {
			return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
		}
		return nil
	}

	list, err := s.List(cmd.Context(), opts.Limit)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeArchive, err.Error(), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(formatter.Writer, "No conversions archived")
		return nil
	}
	for _, c := range list {
		status := "FAIL"
		if c.Passed {
			status = "PASS"
		}
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s  tests=%d failures=%d  %s\n",
			c.Seq, c.RunID, status, c.Tests, c.Failures, c.Source)
	}
	return nil
}
