package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// stdioName stands for stdin or stdout in paths and summaries.
const stdioName = "-"

func isStdio(path string) bool {
	return path == "" || path == stdioName
}

// readInput returns the report bytes and a display name for them.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	path := stdioName
	if len(args) > 0 {
		path = args[0]
	}

	if isStdio(path) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, stdioName, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, stdioName, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read report: %w", err)
	}
	return data, path, nil
}

// writeOutput writes doc to path, creating parent directories, or to the
// command's stdout for "" and "-".
func writeOutput(cmd *cobra.Command, path, doc string) error {
	if isStdio(path) {
		_, err := io.WriteString(cmd.OutOrStdout(), doc)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
