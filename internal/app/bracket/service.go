package bracket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/metrics"
)

// Store is the slice of persistence the bracket flow needs.
type Store interface {
	LoadBracketContext(ctx context.Context, discordID string, season int) (pool.BracketContext, error)
	SaveBracket(ctx context.Context, poolerID int64, season int, rec domainbracket.Record) error
}

// Service drives the playoff bracket wizard one posted event at a time.
type Service struct {
	store    Store
	dir      *teams.Directory
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(store Store, dir *teams.Directory, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{store: store, dir: dir, recorder: recorder, logger: logger}
}

// Directory exposes the team directory used to list the bracket.
func (s *Service) Directory() *teams.Directory {
	return s.dir
}

// Context loads the pooler for a season and refuses submitted brackets.
func (s *Service) Context(ctx context.Context, discordID string, season int) (pool.BracketContext, error) {
	bc, err := s.store.LoadBracketContext(ctx, discordID, season)
	if err != nil {
		return pool.BracketContext{}, fmt.Errorf("bracket: load: %w", err)
	}
	if bc.Submitted {
		return pool.BracketContext{}, fmt.Errorf("bracket: season %d: %w", season, pool.ErrAlreadySubmitted)
	}
	return bc, nil
}

// Apply restores the posted state and applies one navigation or toggle
// event. Teams outside the targeted conference or division are ignored.
func (s *Service) Apply(state domainbracket.State, action Action) *domainbracket.Wizard {
	w := domainbracket.Restore(state)
	switch action.Kind {
	case ActionWinner:
		if s.inDivision(action.Team, action.Conference, action.Division) {
			w.ToggleWinner(action.Conference, action.Division, action.Team)
		}
	case ActionWildcard:
		if s.inConference(action.Team, action.Conference) {
			w.ToggleWildcard(action.Conference, action.Team)
		}
	case ActionContinue:
		_ = w.ProceedToWildcards()
	case ActionBack:
		w.Back()
	}
	return w
}

// Submit freezes the wizard, converts it to short names and stores it.
func (s *Service) Submit(ctx context.Context, bc pool.BracketContext, w *domainbracket.Wizard) error {
	err := s.submit(ctx, bc, w)
	s.recorder.RecordSubmission(metrics.KindBracket, outcome(err))

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "bracket submission refused",
			logging.FieldSeason, bc.Season,
			"pooler_id", bc.PoolerID,
			"err", err,
		)
		return err
	}
	logging.Info(logger, "bracket submitted",
		logging.FieldSeason, bc.Season,
		"pooler_id", bc.PoolerID,
	)
	return nil
}

func (s *Service) submit(ctx context.Context, bc pool.BracketContext, w *domainbracket.Wizard) error {
	sub, err := w.Submit()
	if err != nil {
		return err
	}
	rec, err := sub.Record(s.dir)
	if err != nil {
		return err
	}
	if err := s.store.SaveBracket(ctx, bc.PoolerID, bc.Season, rec); err != nil {
		return fmt.Errorf("bracket: save: %w", err)
	}
	return nil
}

func (s *Service) lookup(name string) (teams.Team, bool) {
	short, err := s.dir.ShortNameOf(name)
	if err != nil {
		return teams.Team{}, false
	}
	return s.dir.ByShortName(short)
}

func (s *Service) inDivision(name string, conf teams.Conference, div teams.Division) bool {
	t, ok := s.lookup(name)
	return ok && t.Conference == conf && t.Division == div
}

func (s *Service) inConference(name string, conf teams.Conference) bool {
	t, ok := s.lookup(name)
	return ok && t.Conference == conf
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, pool.ErrNotFound), errors.Is(err, pool.ErrAlreadySubmitted),
		errors.Is(err, domainbracket.ErrNotReady):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
