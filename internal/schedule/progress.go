package schedule

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/preston-bernstein/friday-night-bytes/internal/report"
)

const (
	progressRule      = 90
	progressNameWidth = 40
)

// ProgressPrinter writes human-readable progress lines for terminal runs.
type ProgressPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewProgressPrinter returns an observer printing to w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

// Observe renders one event.
func (p *ProgressPrinter) Observe(e Event) {
	if p == nil || p.w == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case EventSearchStarted:
		fmt.Fprintf(p.w, "\n🔍 Searching %s games for %s...\n", e.LeagueName, report.DateDescription(e.Date, e.Today))
		fmt.Fprintln(p.w, strings.Repeat("─", progressRule))
	case EventTeamChecked:
		if e.Status == StatusUnknownTeam {
			fmt.Fprintf(p.w, "   ⚠️  Unknown team: %s\n", e.TeamAbbr)
			return
		}
		pad := progressNameWidth - len([]rune(e.Team))
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(p.w, "   📅 %s...%s %s\n", e.Team, strings.Repeat(" ", pad), statusLabel(e))
	}
}

func statusLabel(e Event) string {
	switch e.Status {
	case StatusFound:
		return "✅ Game Found!"
	case StatusNoGame:
		return "❌ No game"
	case StatusRateLimited:
		return "⚠️ Rate limit"
	case StatusBlocked:
		return "🚫 Blocked"
	case StatusSkipped:
		return "⏭️ Skipped"
	default:
		if e.Err != nil {
			return "❌ Error: " + e.Err.Error()
		}
		return "❌ Error"
	}
}
