package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
)

func newTeamsCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "teams [sport]",
		Short: "List team abbreviations for a sport (1/nba, 2/nfl, 3/mlb), or every sport",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := leagues.Default()
			if len(args) == 0 {
				for i, l := range reg.All() {
					if i > 0 {
						fmt.Fprintln(out)
					}
					printTeams(out, reg, l)
				}
				return nil
			}
			league, ok := preferences.ResolveSport(args[0])
			if !ok {
				return &preferences.UnsupportedSportError{Sport: args[0]}
			}
			printTeams(out, reg, league)
			return nil
		},
	}
}
