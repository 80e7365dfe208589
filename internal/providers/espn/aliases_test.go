package espn

import (
	"testing"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
)

func TestAliasesRoundTrip(t *testing.T) {
	for league, aliases := range registryToESPN {
		for reg, espn := range aliases {
			if got := toESPN(league, reg); got != espn {
				t.Fatalf("%s: toESPN(%s)=%s want %s", league, reg, got, espn)
			}
			if got := fromESPN(league, espn); got != reg {
				t.Fatalf("%s: fromESPN(%s)=%s want %s", league, espn, got, reg)
			}
		}
	}
}

func TestAliasesPassThroughUnknown(t *testing.T) {
	if got := toESPN(leagues.NBA, " lal "); got != "LAL" {
		t.Fatalf("expected LAL, got %s", got)
	}
	if got := fromESPN(leagues.MLB, "nyy"); got != "NYY" {
		t.Fatalf("expected NYY, got %s", got)
	}
}

func TestEveryRegistryTeamHasSportPath(t *testing.T) {
	for _, league := range leagues.Default().All() {
		if _, ok := sportPaths[league]; !ok {
			t.Fatalf("missing sport path for %s", league)
		}
	}
}
