package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/feydor/semiotics/internal/config"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Check whether words are in the dictionary",
		Long: `Check dictionary membership. The dictionary holds words of one length
(--length, or the first word's length); words of any other length are
reported as absent.`,
		Example: `  wgolf lookup head dead zzzz`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				dict, err := s.loadDictionary(s.wordLength(args[0]))
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				var t table.Writer
				if s.cfg.Output == config.OutputTable {
					t = table.NewWriter()
					t.SetOutputMirror(w)
					t.SetStyle(table.StyleLight)
					t.AppendHeader(table.Row{"Word", "Found"})
				}
				for _, arg := range args {
					word := strings.ToLower(arg)
					found := dict.Contains(word)
					if t != nil {
						t.AppendRow(table.Row{word, found})
						continue
					}
					answer := "no"
					if found {
						answer = "yes"
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\n", word, answer)
				}
				if t != nil {
					t.Render()
				}
				return nil
			})
		},
	}
}
