package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	appbracket "nfl-picks-service/internal/app/bracket"
	apppicks "nfl-picks-service/internal/app/picks"
	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/views"
)

var errBadRequest = errors.New("bad request")

const (
	picksSuccessMessage   = "Your picks are in. Good luck this week!"
	bracketSuccessMessage = "Your playoff capsule is sealed. See you in February!"
)

// Handler serves the pooler-facing pages.
type Handler struct {
	picks   *apppicks.Service
	bracket *appbracket.Service
	loc     *time.Location
	logger  *slog.Logger
}

// NewHandler constructs a Handler. Kickoffs are shown in loc.
func NewHandler(picks *apppicks.Service, bracket *appbracket.Service, loc *time.Location, logger *slog.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{picks: picks, bracket: bracket, loc: loc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// PicksPage renders the pick form of one pick instance.
func (h *Handler) PicksPage(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	discordID, pickID, err := pickParams(r)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	page, err := h.picks.Page(r.Context(), discordID, pickID)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	logging.Info(logger, "served picks page",
		logging.FieldSeason, page.Week.Season,
		logging.FieldWeek, page.Week.Week,
		logging.FieldCount, len(page.Week.Matches),
	)
	render(w, r, nethttp.StatusOK, views.Picks(views.NewPicksView(discordID, page, h.loc)))
}

// SubmitPicks stores the posted pick form.
func (h *Handler) SubmitPicks(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	discordID, pickID, err := pickParams(r)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("parse form: %v: %w", err, errBadRequest), logger)
		return
	}
	form := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	if err := h.picks.Submit(r.Context(), discordID, pickID, form); err != nil {
		renderError(w, r, err, logger)
		return
	}
	render(w, r, nethttp.StatusOK, views.Success(picksSuccessMessage))
}

// PlayoffsPage opens a fresh bracket wizard.
func (h *Handler) PlayoffsPage(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	discordID, season, err := playoffParams(r)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	bc, err := h.bracket.Context(r.Context(), discordID, season)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	h.renderWizard(w, r, discordID, bc, domainbracket.NewWizard(), logger)
}

// SubmitPlayoffs applies one wizard button press, or stores the bracket
// when the button was submit.
func (h *Handler) SubmitPlayoffs(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	discordID, season, err := playoffParams(r)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("parse form: %v: %w", err, errBadRequest), logger)
		return
	}
	state, err := domainbracket.DecodeState(r.PostForm.Get("state"))
	if err != nil {
		renderError(w, r, fmt.Errorf("%v: %w", err, errBadRequest), logger)
		return
	}
	action, err := appbracket.ParseAction(r.PostForm.Get("action"))
	if err != nil {
		renderError(w, r, fmt.Errorf("%v: %w", err, errBadRequest), logger)
		return
	}

	bc, err := h.bracket.Context(r.Context(), discordID, season)
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	if logger != nil {
		logger = logger.With(logging.FieldAction, string(action.Kind))
	}

	if action.Kind == appbracket.ActionSubmit {
		ctx := logging.WithLogger(r.Context(), logger)
		if err := h.bracket.Submit(ctx, bc, domainbracket.Restore(state)); err != nil {
			renderError(w, r, err, logger)
			return
		}
		render(w, r, nethttp.StatusOK, views.Success(bracketSuccessMessage))
		return
	}
	h.renderWizard(w, r, discordID, bc, h.bracket.Apply(state, action), logger)
}

func (h *Handler) renderWizard(w nethttp.ResponseWriter, r *nethttp.Request, discordID string, bc pool.BracketContext, wiz *domainbracket.Wizard, logger *slog.Logger) {
	v, err := views.NewPlayoffsView(discordID, bc, wiz, h.bracket.Directory())
	if err != nil {
		renderError(w, r, err, logger)
		return
	}
	render(w, r, nethttp.StatusOK, views.Playoffs(v))
}

func pickParams(r *nethttp.Request) (string, int64, error) {
	discordID := strings.TrimSpace(r.PathValue("discordID"))
	if discordID == "" {
		return "", 0, fmt.Errorf("missing discord id: %w", errBadRequest)
	}
	pickID, err := strconv.ParseInt(r.PathValue("pickID"), 10, 64)
	if err != nil || pickID <= 0 {
		return "", 0, fmt.Errorf("invalid pick id %q: %w", r.PathValue("pickID"), errBadRequest)
	}
	return discordID, pickID, nil
}

func playoffParams(r *nethttp.Request) (string, int, error) {
	discordID := strings.TrimSpace(r.PathValue("discordID"))
	if discordID == "" {
		return "", 0, fmt.Errorf("missing discord id: %w", errBadRequest)
	}
	season, err := strconv.Atoi(r.PathValue("season"))
	if err != nil || season <= 0 {
		return "", 0, fmt.Errorf("invalid season %q: %w", r.PathValue("season"), errBadRequest)
	}
	return discordID, season, nil
}
