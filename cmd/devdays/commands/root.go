// Package commands implements the devdays command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/devdays/pkg/version"
)

// UsageLine is printed to stderr on a usage error.
const UsageLine = "Usage: devdays <repo_path>"

// ErrUsage marks a wrong argument count or an unparsable flag.
var ErrUsage = errors.New("usage error")

// NewRootCommand creates the devdays root command. Running it with a
// repository path prints the contribution report.
func NewRootCommand() *cobra.Command {
	rc := &ReportCommand{}

	root := &cobra.Command{
		Use:   "devdays [flags] <repo_path>",
		Short: "Count distinct commit days per author",
		Long: `devdays walks every branch of a git repository and reports, per author,
the number of distinct UTC calendar days with at least one commit.

A repository directory named "version" collides with the version command;
pass it as ./version or by absolute path.`,
		Args:          exactlyOneArg,
		RunE:          rc.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.PersistentFlags().StringVar(&rc.configPath, "config", "", "config file (default: ./devdays.yaml or ~/.config/devdays/devdays.yaml)")
	root.PersistentFlags().BoolVarP(&rc.verbose, "verbose", "v", false, "verbose output (debug logging)")

	rc.registerFlags(root)

	root.AddCommand(versionCmd())

	return root
}

func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected 1 argument, got %d", ErrUsage, len(args))
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devdays %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

// Execute runs the command line and returns the process exit code.
// Diagnostics go to stderr; stdout only ever receives a complete report.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args for nil.
	if args == nil {
		args = []string{}
	}

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(stderr, UsageLine)

		return ExitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	return ExitCode(err)
}
