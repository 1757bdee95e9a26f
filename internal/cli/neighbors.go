package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewNeighborsCommand creates the neighbors command.
func NewNeighborsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List dictionary words one letter away",
		Long: `List every dictionary word reachable from word by one letter substitution,
in the order the solver explores them.`,
		Example: `  wgolf neighbors head`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToLower(args[0])
			return withSession(cmd, func(s *session) error {
				if _, err := s.loadDictionary(s.wordLength(word)); err != nil {
					return err
				}
				neighbors, err := s.solver().Neighbors(word)
				if err != nil {
					return err
				}
				for _, n := range neighbors {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	}
}
