package report

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

// Minimum column widths, padding included. Columns grow to fit their longest cell.
const (
	teamWidth    = 35
	matchupWidth = 45
	cellPadding  = 2
)

var (
	purple  = lipgloss.Color("#bd93f9")
	comment = lipgloss.Color("#6272a4")
	green   = lipgloss.Color("#50fa7b")
)

// Renderer draws game tables. Styles adapt to the color support of the writer they were built for.
type Renderer struct {
	loc *time.Location

	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	empty  lipgloss.Style
}

// NewRenderer builds a renderer for w. Times are shown in loc, the display zone.
func NewRenderer(w io.Writer, loc *time.Location) *Renderer {
	if loc == nil {
		loc = timeutil.ResolveLocation(timeutil.DefaultZone)
	}
	if w == nil {
		w = io.Discard
	}
	re := lipgloss.NewRenderer(w)
	return &Renderer{
		loc:    loc,
		title:  re.NewStyle().Foreground(purple).Bold(true),
		header: re.NewStyle().Foreground(green).Bold(true).Padding(0, 1),
		cell:   re.NewStyle().Padding(0, 1),
		border: re.NewStyle().Foreground(comment),
		empty:  re.NewStyle().Foreground(comment),
	}
}

// Report renders games grouped by league, or the no-games message for description when list is empty.
func (r *Renderer) Report(list []games.Game, description string) string {
	if len(list) == 0 {
		return r.empty.Render(NoGamesMessage(description))
	}

	var b strings.Builder
	b.WriteString(r.title.Render("Games for your favorite teams " + description))
	b.WriteString("\n")
	for _, group := range GroupByLeague(list) {
		b.WriteString("\n")
		b.WriteString(r.title.Render(group.LeagueName))
		b.WriteString("\n")
		b.WriteString(r.Table(group.Games))
		b.WriteString("\n")
	}
	return b.String()
}

// Table renders one table of games with team, matchup, venue and start columns.
func (r *Renderer) Table(list []games.Game) string {
	teamCol, matchupCol := teamWidth, matchupWidth
	for _, g := range list {
		teamCol = max(teamCol, lipgloss.Width(g.Team)+cellPadding)
		matchupCol = max(matchupCol, lipgloss.Width(Matchup(g))+cellPadding)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		BorderColumn(false).
		Headers("Team", "Matchup", "Venue", "When").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := r.cell
			if row == table.HeaderRow {
				style = r.header
			}
			switch col {
			case 0:
				return style.Width(teamCol)
			case 1:
				return style.Width(matchupCol)
			default:
				return style
			}
		})

	for _, g := range list {
		t.Row(g.Team, Matchup(g), Venue(g.Location), When(g, r.loc))
	}
	return t.String()
}
