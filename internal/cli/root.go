// Package cli provides the command-line interface for wgolf.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/feydor/semiotics/internal/config"
	"github.com/feydor/semiotics/strpool"
	"github.com/feydor/semiotics/wordlist"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitNoLadder    = 2
	ExitUnavailable = 3
	ExitOverflow    = 4
)

// ErrNoLadder is returned by solve --strict when the search is exhausted.
var ErrNoLadder = errors.New("no ladder exists")

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wgolf",
		Short: "wgolf - word golf solver",
		Long: `wgolf solves word ladders ("word golf"): it turns a start word into a goal
word one letter at a time, every intermediate word being a dictionary word of
the same length.

The search is depth-first in a fixed order (character position, then letter),
so the first ladder found is reproducible but not necessarily the shortest.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if cfg.Verbose && cfg.ConfigFile != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.ConfigFile)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./wgolf.yaml)")
	pf.StringP("dict", "d", "", "Path to the word list (.gz and .zst are decompressed)")
	pf.IntP("length", "l", 0, "Word length (default: length of the first word argument)")
	pf.Int("capacity", 0, "String pool capacity in bytes")
	pf.String("alphabet", "", "Substitution letters, in exploration order")
	pf.Bool("require-sorted", false, "Fail if the word list is not sorted")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.String("log-file", "", "Also write JSON logs to this file")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	pf.StringP("output", "o", "", "Output format (text|table)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputTable}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewNeighborsCommand())
	rootCmd.AddCommand(NewLookupCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewVersionCommand(Version, GitCommit))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrNoLadder) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, strpool.ErrOverflow) {
			_, _ = fmt.Fprintln(stderr, "Hint: raise --capacity or narrow the word list")
		}
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoLadder):
		return ExitNoLadder
	case errors.Is(err, wordlist.ErrSourceUnavailable):
		return ExitUnavailable
	case errors.Is(err, strpool.ErrOverflow):
		return ExitOverflow
	}
	return ExitError
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return config.Default()
}
