package bracket

import (
	"context"
	"errors"
	"testing"

	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/metrics"
	"nfl-picks-service/internal/store"
)

var winners = map[teams.Conference]map[teams.Division]string{
	teams.AFC: {
		teams.North: "Baltimore Ravens",
		teams.South: "Houston Texans",
		teams.East:  "Buffalo Bills",
		teams.West:  "Kansas City Chiefs",
	},
	teams.NFC: {
		teams.North: "Detroit Lions",
		teams.South: "Tampa Bay Buccaneers",
		teams.East:  "Philadelphia Eagles",
		teams.West:  "Los Angeles Rams",
	},
}

var wildcards = map[teams.Conference][]string{
	teams.AFC: {"Pittsburgh Steelers", "Los Angeles Chargers", "Denver Broncos"},
	teams.NFC: {"Minnesota Vikings", "Green Bay Packers", "Washington Commanders"},
}

func newService(t *testing.T) (*Service, *store.MemoryStore, *metrics.Recorder) {
	t.Helper()
	st := store.NewMemoryStore()
	if err := st.UpsertPooler(context.Background(), pool.Pooler{DiscordID: "42", Name: "Jean"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rec := metrics.NewRecorder()
	return NewService(st, teams.NewDirectory(), rec, nil), st, rec
}

// drive posts every event a pooler would click through.
func drive(svc *Service) *domainbracket.Wizard {
	state := domainbracket.NewWizard().State()
	post := func(a Action) {
		state = svc.Apply(state, a).State()
	}
	for _, conf := range teams.Conferences {
		for _, div := range teams.Divisions {
			post(Action{Kind: ActionWinner, Conference: conf, Division: div, Team: winners[conf][div]})
		}
	}
	post(Action{Kind: ActionContinue})
	for _, conf := range teams.Conferences {
		for _, name := range wildcards[conf] {
			post(Action{Kind: ActionWildcard, Conference: conf, Team: name})
		}
	}
	return domainbracket.Restore(state)
}

func TestApplyDrivesWizardToSubmission(t *testing.T) {
	svc, st, rec := newService(t)
	ctx := context.Background()

	w := drive(svc)
	if !w.CanSubmit() {
		t.Fatalf("expected submittable wizard, got %+v", w.State())
	}

	bc, err := svc.Context(ctx, "42", 2024)
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if err := svc.Submit(ctx, bc, w); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stored, ok := st.Bracket("42", 2024)
	if !ok {
		t.Fatal("expected stored bracket")
	}
	if stored.Winner(teams.AFC, teams.North) != "BAL" || stored.WildcardList(teams.AFC) != "PIT,LAC,DEN" {
		t.Fatalf("unexpected stored bracket %+v", stored)
	}
	if rec.Submissions(metrics.KindBracket, metrics.OutcomeAccepted) != 1 {
		t.Fatal("expected accepted submission recorded")
	}

	if _, err := svc.Context(ctx, "42", 2024); !errors.Is(err, pool.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestApplyIgnoresTeamsOutsideTheSlot(t *testing.T) {
	svc, _, _ := newService(t)
	state := domainbracket.NewWizard().State()

	w := svc.Apply(state, Action{Kind: ActionWinner, Conference: teams.AFC, Division: teams.North, Team: "Houston Texans"})
	if got := w.Winner(teams.AFC, teams.North); got != "" {
		t.Fatalf("expected misplaced winner ignored, got %q", got)
	}
	w = svc.Apply(state, Action{Kind: ActionWinner, Conference: teams.AFC, Division: teams.North, Team: "Springfield Atoms"})
	if got := w.Winner(teams.AFC, teams.North); got != "" {
		t.Fatalf("expected unknown team ignored, got %q", got)
	}
}

func TestApplyRavensCannotBeWildcard(t *testing.T) {
	svc, _, _ := newService(t)
	w := drive(svc)
	w.Back()
	state := w.State()

	w = svc.Apply(state, Action{Kind: ActionContinue})
	w = svc.Apply(w.State(), Action{Kind: ActionWildcard, Conference: teams.AFC, Team: "Baltimore Ravens"})
	if w.IsWildcard(teams.AFC, "Baltimore Ravens") {
		t.Fatal("expected division winner rejected as wildcard")
	}
}

func TestApplyContinueRequiresWinners(t *testing.T) {
	svc, _, _ := newService(t)
	w := svc.Apply(domainbracket.NewWizard().State(), Action{Kind: ActionContinue})
	if w.Phase() != domainbracket.SelectingWinners {
		t.Fatalf("expected winners phase, got %s", w.Phase())
	}
}

func TestSubmitIncompleteWizardIsRejected(t *testing.T) {
	svc, st, rec := newService(t)
	ctx := context.Background()
	bc, _ := svc.Context(ctx, "42", 2024)

	if err := svc.Submit(ctx, bc, domainbracket.NewWizard()); !errors.Is(err, domainbracket.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if _, ok := st.Bracket("42", 2024); ok {
		t.Fatal("expected nothing stored")
	}
	if rec.Submissions(metrics.KindBracket, metrics.OutcomeRejected) != 1 {
		t.Fatal("expected rejected submission recorded")
	}
}

func TestContextUnknownPooler(t *testing.T) {
	svc, _, _ := newService(t)
	if _, err := svc.Context(context.Background(), "nobody", 2024); !errors.Is(err, pool.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
