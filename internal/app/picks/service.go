package picks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nfl-picks-service/internal/app/schedule"
	"nfl-picks-service/internal/domain/matches"
	domainpicks "nfl-picks-service/internal/domain/picks"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/metrics"
)

// FeaturedField is the form field carrying the over/under prediction.
const FeaturedField = "featured"

// Over/under predictions accepted for the featured match.
const (
	FeaturedOver  = "over"
	FeaturedUnder = "under"
)

// Store is the slice of persistence the picks flow needs.
type Store interface {
	LoadPickContext(ctx context.Context, discordID string, pickID int64) (pool.PickContext, error)
	SavePicks(ctx context.Context, pickID int64, pickString string, featuredPick *string) error
}

// Schedule resolves the matches of a week.
type Schedule interface {
	Week(ctx context.Context, season, week int, featuredMatchID, favoriteTeam string) (schedule.Week, error)
}

// Page is everything the picks view renders.
type Page struct {
	Context pool.PickContext
	Week    schedule.Week
}

// Featured returns the featured match, if the week has one.
func (p Page) Featured() (matches.Match, bool) {
	for _, m := range p.Week.Matches {
		if m.IsFeatured {
			return m, true
		}
	}
	return matches.Match{}, false
}

// Service renders and accepts weekly pick forms.
type Service struct {
	store    Store
	schedule Schedule
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(store Store, sched Schedule, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{store: store, schedule: sched, recorder: recorder, logger: logger}
}

// Page loads the pick instance and the week it was primed for.
// Instances that already hold picks are refused.
func (s *Service) Page(ctx context.Context, discordID string, pickID int64) (Page, error) {
	pc, err := s.load(ctx, discordID, pickID)
	if err != nil {
		return Page{}, err
	}
	week, err := s.week(ctx, pc)
	if err != nil {
		return Page{}, err
	}
	return Page{Context: pc, Week: week}, nil
}

// Submit builds the pick set from the form and stores it. Match ids come
// from a fresh schedule fetch, never from the form.
func (s *Service) Submit(ctx context.Context, discordID string, pickID int64, form map[string]string) error {
	err := s.submit(ctx, discordID, pickID, form)
	s.recorder.RecordSubmission(metrics.KindPicks, outcome(err))

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "picks submission refused",
			logging.FieldDiscordID, discordID,
			logging.FieldPickID, pickID,
			"err", err,
		)
		return err
	}
	logging.Info(logger, "picks submitted",
		logging.FieldDiscordID, discordID,
		logging.FieldPickID, pickID,
	)
	return nil
}

func (s *Service) submit(ctx context.Context, discordID string, pickID int64, form map[string]string) error {
	pc, err := s.load(ctx, discordID, pickID)
	if err != nil {
		return err
	}
	week, err := s.week(ctx, pc)
	if err != nil {
		return err
	}

	set := domainpicks.BuildPicks(week.MatchIDs(), form, week.ForcedMatchID, pc.FavoriteTeam)
	if err := set.Validate(week.Matches); err != nil {
		return err
	}
	encoded, err := set.Encode()
	if err != nil {
		return err
	}

	var featured *string
	if askedOverUnder(pc, week) {
		featured = featuredPick(form[FeaturedField])
	}
	if err := s.store.SavePicks(ctx, pc.PickID, encoded, featured); err != nil {
		return fmt.Errorf("picks: save: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, discordID string, pickID int64) (pool.PickContext, error) {
	pc, err := s.store.LoadPickContext(ctx, discordID, pickID)
	if err != nil {
		return pool.PickContext{}, fmt.Errorf("picks: load: %w", err)
	}
	if pc.Submitted() {
		return pool.PickContext{}, fmt.Errorf("picks: pick %d: %w", pickID, pool.ErrAlreadySubmitted)
	}
	return pc, nil
}

func (s *Service) week(ctx context.Context, pc pool.PickContext) (schedule.Week, error) {
	featuredID := ""
	if pc.FeaturedMatchID != nil {
		featuredID = *pc.FeaturedMatchID
	}
	return s.schedule.Week(ctx, pc.Season, pc.Week, featuredID, pc.FavoriteTeam)
}

// askedOverUnder reports whether the page showed the over/under question:
// a feature is set and its match is in the fetched week.
func askedOverUnder(pc pool.PickContext, week schedule.Week) bool {
	if pc.FeaturedMatchID == nil {
		return false
	}
	m, ok := Page{Week: week}.Featured()
	return ok && m.ID == *pc.FeaturedMatchID
}

func featuredPick(raw string) *string {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case FeaturedOver, FeaturedUnder:
		return &v
	default:
		return nil
	}
}

func isUnknownTeam(err error) bool {
	_, ok := teams.AsUnknownTeamError(err)
	return ok
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, pool.ErrNotFound), errors.Is(err, pool.ErrAlreadySubmitted):
		return metrics.OutcomeRejected
	case isUnknownTeam(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
