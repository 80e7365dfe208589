package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
)

const (
	welcome     = "Welcome to Friday Night Bytes!"
	lakerNation = "Bleed purple and gold 💜💛! Laker Nation, stand up!"
	interrupted = "\nReceived keyboard interruption. Exiting the program."
)

var usageExamples = []string{
	"Usage: fnb --sport <sport_number> --<league>-teams <team_abbreviations>",
	"Example: fnb --sport 1 --nba-teams lal,bos",
	"Example: fnb --sport 3 --mlb-teams lad,nyy",
}

func printMultipleLeagues(w io.Writer) {
	fmt.Fprintln(w, "Error: You can only specify teams for one sport at a time.")
	fmt.Fprintln(w, "Please choose either --nba-teams, --nfl-teams, or --mlb-teams, but not multiple.")
	fmt.Fprintln(w)
	for _, line := range usageExamples {
		fmt.Fprintln(w, line)
	}
}

func printCLIUsage(w io.Writer, reg *leagues.Registry) {
	fmt.Fprintln(w, "When using CLI mode, both --sport and team flags are required.")
	for _, line := range usageExamples {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "\nSupported sports:")
	for _, l := range reg.All() {
		fmt.Fprintf(w, "  %s - %s\n", leagues.SportNumber(l), reg.Name(l))
	}
}

func printSports(w io.Writer, reg *leagues.Registry) {
	fmt.Fprintln(w, "Currently, the following sports are supported:")
	for _, l := range reg.All() {
		fmt.Fprintf(w, "%s - %s\n", leagues.SportNumber(l), reg.Name(l))
	}
}

func printTeams(w io.Writer, reg *leagues.Registry, l leagues.League) {
	fmt.Fprintf(w, "%s teams:\n", reg.Name(l))
	for _, t := range reg.Teams(l) {
		fmt.Fprintf(w, "%s (%s)\n", t.Name, t.Abbreviation)
	}
}

// describePreferences renders "sport=1 nba_team=lal,bos".
func describePreferences(prefs preferences.Preferences) string {
	parts := make([]string, 0, len(prefs.Leagues())+1)
	if ls := prefs.Leagues(); len(ls) == 1 {
		parts = append(parts, "sport="+leagues.SportNumber(ls[0]))
	}
	m := prefs.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(m[k], ","))
	}
	return strings.Join(parts, " ")
}

func isLakerFan(prefs preferences.Preferences) bool {
	return prefs.Has(leagues.NBA, "lal")
}
