package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/feydor/semiotics/golf"
	"github.com/feydor/semiotics/internal/config"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "solve <start> <goal>",
		Short: "Find a word ladder from start to goal",
		Long: `Search a ladder from start to goal. Only words of the start word's length
are loaded from the word list; start itself need not be a dictionary word.

When no ladder exists the command prints "no ladder exists" and exits 0,
or exits 2 with --strict.`,
		Example: `  # Solve with the system word list
  wgolf solve warm cold

  # Show each step in a table
  wgolf solve warm cold --output table

  # Fail in scripts when the words are not connected
  wgolf solve head tail --strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				return runSolve(cmd, s, strings.ToLower(args[0]), strings.ToLower(args[1]), strict)
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 2 when no ladder exists")
	return cmd
}

func runSolve(cmd *cobra.Command, s *session, start, goal string, strict bool) error {
	if _, err := s.loadDictionary(s.wordLength(start)); err != nil {
		return err
	}

	res, err := s.solver().Solve(start, goal)
	s.logger.WithWords(start, goal).LogSolve(res.State.String(), res.Steps, res.Explored, err)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !res.Found() {
		_, _ = fmt.Fprintln(w, ErrNoLadder.Error())
		if strict {
			return ErrNoLadder
		}
		return nil
	}

	if s.cfg.Output == config.OutputTable {
		renderLadderTable(w, res)
		return nil
	}
	renderLadderText(w, res)
	return nil
}

func renderLadderText(w io.Writer, res golf.Result) {
	_, _ = fmt.Fprintln(w, strings.Join(res.Chain, " -> "))
	_, _ = fmt.Fprintf(w, "%d %s\n", res.Steps, plural(res.Steps, "step", "steps"))
}

func renderLadderTable(w io.Writer, res golf.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "Word", "Changed"})

	for i, word := range res.Chain {
		changed := ""
		if i > 0 {
			changed = changedLetter(res.Chain[i-1], word)
		}
		t.AppendRow(table.Row{i, word, changed})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d steps", res.Steps), fmt.Sprintf("%d explored", res.Explored)})
	t.Render()
}

// changedLetter describes the single substitution between two ladder words,
// e.g. "3: m->d".
func changedLetter(prev, next string) string {
	for i := 0; i < len(prev) && i < len(next); i++ {
		if prev[i] != next[i] {
			return fmt.Sprintf("%d: %c->%c", i+1, prev[i], next[i])
		}
	}
	return ""
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
