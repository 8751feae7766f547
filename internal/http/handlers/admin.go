package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/http/requestutil"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/providers"
)

// AdminStore is the slice of persistence operators drive.
type AdminStore interface {
	UpsertPooler(ctx context.Context, p pool.Pooler) error
	PrimePicks(ctx context.Context, discordID string, season, week int) (pool.PrimeResult, error)
	SetFeature(ctx context.Context, f pool.Feature) error
}

// AdminHandler exposes operator endpoints guarded by a bearer token.
type AdminHandler struct {
	store    AdminStore
	dir      *teams.Directory
	picksURL string
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. Links handed out by
// PrimePicks are rooted at picksURL.
func NewAdminHandler(store AdminStore, dir *teams.Directory, picksURL, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:    store,
		dir:      dir,
		picksURL: strings.TrimRight(picksURL, "/"),
		token:    token,
		logger:   logger,
	}
}

type primeRequest struct {
	DiscordID string `json:"discordId"`
	Season    int    `json:"season"`
	Week      int    `json:"week"`
}

type primeResponse struct {
	pool.PrimeResult
	URL string `json:"url"`
}

// PrimePicks hands out the pick instance of a pooler for a week.
func (h *AdminHandler) PrimePicks(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req primeRequest
	if !h.decode(w, r, &req, logger) {
		return
	}
	if req.DiscordID == "" || req.Season <= 0 {
		writeError(w, r, http.StatusBadRequest, "discordId and season are required", logger)
		return
	}
	if _, err := providers.ResolveWeek(req.Week); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	res, err := h.store.PrimePicks(r.Context(), req.DiscordID, req.Season, req.Week)
	if err != nil {
		h.storeError(w, r, "prime picks", err, logger)
		return
	}
	logging.Info(logger, "picks primed",
		logging.FieldDiscordID, req.DiscordID,
		logging.FieldSeason, req.Season,
		logging.FieldWeek, req.Week,
		logging.FieldPickID, res.PickID,
		"created", res.Created,
	)
	writeJSON(w, http.StatusOK, primeResponse{
		PrimeResult: res,
		URL:         fmt.Sprintf("%s/picks/%s/%d", h.picksURL, req.DiscordID, res.PickID),
	}, logger)
}

// SetFeature designates the featured match of a week.
func (h *AdminHandler) SetFeature(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var f pool.Feature
	if !h.decode(w, r, &f, logger) {
		return
	}
	f.MatchID = strings.TrimSpace(f.MatchID)
	if f.MatchID == "" || f.Season <= 0 || f.Target <= 0 {
		writeError(w, r, http.StatusBadRequest, "season, matchId and a positive target are required", logger)
		return
	}
	if _, err := providers.ResolveWeek(f.Week); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	if err := h.store.SetFeature(r.Context(), f); err != nil {
		h.storeError(w, r, "set feature", err, logger)
		return
	}
	logging.Info(logger, "feature set",
		logging.FieldSeason, f.Season,
		logging.FieldWeek, f.Week,
		"match_id", f.MatchID,
	)
	writeJSON(w, http.StatusOK, f, logger)
}

// UpsertPooler registers or updates a pool member.
func (h *AdminHandler) UpsertPooler(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var p pool.Pooler
	if !h.decode(w, r, &p, logger) {
		return
	}
	p.DiscordID = strings.TrimSpace(p.DiscordID)
	p.Name = strings.TrimSpace(p.Name)
	if p.DiscordID == "" || p.Name == "" {
		writeError(w, r, http.StatusBadRequest, "discordId and name are required", logger)
		return
	}
	if p.FavoriteTeam != "" {
		short, err := h.dir.NormalizeShortName(p.FavoriteTeam)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error(), logger)
			return
		}
		p.FavoriteTeam = short
	}
	if err := h.store.UpsertPooler(r.Context(), p); err != nil {
		h.storeError(w, r, "upsert pooler", err, logger)
		return
	}
	logging.Info(logger, "pooler saved", logging.FieldDiscordID, p.DiscordID)
	writeJSON(w, http.StatusOK, p, logger)
}

// RequireToken rejects requests without the configured bearer token.
func (h *AdminHandler) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authorize(r) {
			logging.Warn(h.logger, "admin unauthorized",
				logging.FieldPath, r.URL.Path,
				logging.FieldClientIP, requestutil.ClientIP(r),
			)
			writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
			return
		}
		next(w, r)
	}
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+h.token)) == 1
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dest any, logger *slog.Logger) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body", logger)
		return false
	}
	return true
}

func (h *AdminHandler) storeError(w http.ResponseWriter, r *http.Request, op string, err error, logger *slog.Logger) {
	if errors.Is(err, pool.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "pooler not found", logger)
		return
	}
	logging.Error(logger, "admin "+op+" failed", err)
	writeError(w, r, http.StatusInternalServerError, op+" failed", logger)
}
