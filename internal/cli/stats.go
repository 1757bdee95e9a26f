package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/feydor/semiotics/internal/config"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the dictionary and report pool usage",
		Long: `Load the dictionary for --length and report how many words were kept
and how much of the string pool they occupy.`,
		Example: `  wgolf stats --length 4
  wgolf stats --length 5 --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(s *session) error {
				if s.cfg.WordLength == 0 {
					return errors.New("stats needs a word length: pass --length or set word_length")
				}
				dict, err := s.loadDictionary(s.cfg.WordLength)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				m := s.pool.Metrics()
				if s.cfg.Output != config.OutputTable {
					_, _ = fmt.Fprintf(w, "%d words of length %d from %s (sorted: %t)\n",
						dict.Len(), dict.WordLen(), s.cfg.DictPath, dict.Sorted())
					_, _ = fmt.Fprintln(w, s.pool.Summary())
					return nil
				}

				t := table.NewWriter()
				t.SetOutputMirror(w)
				t.SetStyle(table.StyleLight)
				t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
				t.AppendHeader(table.Row{"Metric", "Value"})
				t.AppendRows([]table.Row{
					{"Source", s.cfg.DictPath},
					{"Words", dict.Len()},
					{"Word length", dict.WordLen()},
					{"Sorted", dict.Sorted()},
					{"Pool strings", m.Count},
					{"Bytes in use", m.SizeInUse},
					{"Capacity", m.Capacity},
					{"Utilization", fmt.Sprintf("%.1f%%", m.Utilization*100)},
					{"Generation", m.Generation},
				})
				t.Render()
				return nil
			})
		},
	}
}
