package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/checker"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/games"
	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
	"github.com/preston-bernstein/friday-night-bytes/internal/providers"
	"github.com/preston-bernstein/friday-night-bytes/internal/scheduler"
	"github.com/preston-bernstein/friday-night-bytes/internal/timeutil"
)

const formatText = "text"

// Checker runs daily and weekly game checks.
type Checker interface {
	Today() time.Time
	Day(ctx context.Context, prefs preferences.Preferences, date time.Time) (checker.Result, error)
	Week(ctx context.Context, prefs preferences.Preferences) (checker.Result, error)
}

// Handler serves the league catalogue and game checks.
type Handler struct {
	checker   Checker
	registry  *leagues.Registry
	favorites preferences.Preferences
	logger    *slog.Logger
	statusFn  func() scheduler.Status
}

// NewHandler constructs a Handler. favorites answers /games requests that name no league or teams.
// statusFn may be nil when no scheduler runs.
func NewHandler(c Checker, registry *leagues.Registry, favorites preferences.Preferences, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	if registry == nil {
		registry = leagues.Default()
	}
	return &Handler{
		checker:   c,
		registry:  registry,
		favorites: favorites,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether scheduled notifications are succeeding. Without a scheduler the service is always ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Leagues lists the supported leagues with their sport selector numbers.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	type leagueResponse struct {
		ID     leagues.League `json:"id"`
		Name   string         `json:"name"`
		Number string         `json:"number"`
	}
	all := h.registry.All()
	out := make([]leagueResponse, 0, len(all))
	for _, l := range all {
		out = append(out, leagueResponse{ID: l, Name: h.registry.Name(l), Number: leagues.SportNumber(l)})
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

// Teams lists the teams of one league.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "league")
	league, ok := preferences.ResolveSport(raw)
	if !ok {
		writeError(w, r, http.StatusNotFound, "league not found", h.logger)
		return
	}
	info, _ := h.registry.Lookup(league)
	writeJSON(w, http.StatusOK, info, h.logger)
}

// Games checks a single date, today when no date is given.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.preferences(w, r)
	if !ok {
		return
	}

	date := h.checker.Today()
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		parsed, err := timeutil.ParseDate(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		date = parsed
	}

	res, err := h.checker.Day(r.Context(), prefs, date)
	if err != nil {
		h.checkFailed(w, r, err)
		return
	}
	if wantsText(r) {
		writeText(w, http.StatusOK, res.Report, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, dayResponse{Result: res, Date: timeutil.FormatDate(date)}, h.logger)
}

// Week checks the seven days starting today.
func (h *Handler) Week(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.preferences(w, r)
	if !ok {
		return
	}

	res, err := h.checker.Week(r.Context(), prefs)
	if err != nil {
		h.checkFailed(w, r, err)
		return
	}
	if wantsText(r) {
		writeText(w, http.StatusOK, res.Report, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, weekResponse{Result: res, Days: days(res.Week)}, h.logger)
}

type dayResponse struct {
	checker.Result
	Date string `json:"date"`
}

type weekResponse struct {
	checker.Result
	Days []dayGames `json:"days"`
}

type dayGames struct {
	Date  string       `json:"date"`
	Games []games.Game `json:"games"`
}

func days(week games.Week) []dayGames {
	out := make([]dayGames, 0, len(week))
	for _, day := range week {
		out = append(out, dayGames{Date: timeutil.FormatDate(day.Date), Games: day.Games})
	}
	return out
}

// preferences builds validated preferences from the league and teams query parameters,
// falling back to the configured favourites when both are absent.
func (h *Handler) preferences(w http.ResponseWriter, r *http.Request) (preferences.Preferences, bool) {
	q := r.URL.Query()
	rawLeague := strings.TrimSpace(q.Get("league"))
	rawTeams := strings.TrimSpace(q.Get("teams"))

	if rawLeague == "" && rawTeams == "" {
		if h.favorites.IsEmpty() {
			writeError(w, r, http.StatusBadRequest, "league and teams are required", h.logger)
			return preferences.Preferences{}, false
		}
		return h.favorites, true
	}

	league, ok := preferences.ResolveSport(rawLeague)
	if !ok {
		writeError(w, r, http.StatusBadRequest, (&preferences.UnsupportedSportError{Sport: rawLeague}).Error(), h.logger)
		return preferences.Preferences{}, false
	}
	prefs, err := preferences.New(h.registry, league, preferences.SplitTeams(rawTeams))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return preferences.Preferences{}, false
	}
	return prefs, true
}

func (h *Handler) checkFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Warn(logger, "check interrupted", "error", err)
		writeError(w, r, http.StatusServiceUnavailable, "check interrupted", h.logger)
	case errors.Is(err, providers.ErrProviderUnavailable):
		logging.Error(logger, "schedule provider unavailable", err)
		writeError(w, r, http.StatusBadGateway, "schedule provider unavailable", h.logger)
	default:
		logging.Error(logger, "check failed", err)
		writeError(w, r, http.StatusInternalServerError, "check failed", h.logger)
	}
}

func wantsText(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), formatText)
}
