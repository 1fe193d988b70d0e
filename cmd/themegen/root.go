package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeui/themegen/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themegen",
		Short:         "themegen builds design-system themes from compiled-in plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBuildCmd(flags, log))
	cmd.AddCommand(newValidateCmd(flags, log))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }
