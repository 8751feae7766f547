package store

import (
	"context"
	"errors"
	"testing"

	"nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
)

func sampleRecord() bracket.Record {
	return bracket.Record{
		Winners: map[teams.Conference]map[teams.Division]string{
			teams.AFC: {teams.North: "BAL", teams.South: "HOU", teams.East: "BUF", teams.West: "KC"},
			teams.NFC: {teams.North: "DET", teams.South: "TB", teams.East: "PHI", teams.West: "LAR"},
		},
		Wildcards: map[teams.Conference][]string{
			teams.AFC: {"PIT", "LAC", "DEN"},
			teams.NFC: {"MIN", "GB", "WAS"},
		},
	}
}

func seedPooler(t *testing.T, s Store, discordID string) {
	t.Helper()
	err := s.UpsertPooler(context.Background(), pool.Pooler{
		DiscordID:    discordID,
		Name:         "Jean",
		Avatar:       "avatar.png",
		FavoriteTeam: "MTL",
	})
	if err != nil {
		t.Fatalf("upsert pooler: %v", err)
	}
}

// runContract checks the behaviour every Store implementation shares.
func runContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("prime then load picks", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")

		res, err := s.PrimePicks(ctx, "42", 2024, 3)
		if err != nil {
			t.Fatalf("prime: %v", err)
		}
		if !res.Created || res.Filled || res.PickID == 0 {
			t.Fatalf("unexpected prime result %+v", res)
		}

		again, err := s.PrimePicks(ctx, "42", 2024, 3)
		if err != nil {
			t.Fatalf("prime again: %v", err)
		}
		if again.Created || again.PickID != res.PickID {
			t.Fatalf("expected existing instance, got %+v", again)
		}

		pc, err := s.LoadPickContext(ctx, "42", res.PickID)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if pc.DisplayName != "Jean" || pc.FavoriteTeam != "MTL" || pc.Avatar != "avatar.png" {
			t.Fatalf("unexpected pooler fields %+v", pc)
		}
		if pc.Season != 2024 || pc.Week != 3 || pc.Submitted() {
			t.Fatalf("unexpected instance fields %+v", pc)
		}
		if pc.FeaturedMatchID != nil || pc.FeaturedTarget != nil {
			t.Fatalf("expected no feature, got %+v", pc)
		}
	})

	t.Run("unknown rows are not found", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")
		res, _ := s.PrimePicks(ctx, "42", 2024, 1)

		if _, err := s.LoadPickContext(ctx, "43", res.PickID); !errors.Is(err, pool.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for other pooler, got %v", err)
		}
		if _, err := s.LoadPickContext(ctx, "42", 9999); !errors.Is(err, pool.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for missing pick, got %v", err)
		}
		if _, err := s.PrimePicks(ctx, "nobody", 2024, 1); !errors.Is(err, pool.ErrNotFound) {
			t.Fatalf("expected ErrNotFound priming unknown pooler, got %v", err)
		}
		if err := s.SavePicks(ctx, 9999, "{}", nil); !errors.Is(err, pool.ErrNotFound) {
			t.Fatalf("expected ErrNotFound saving missing pick, got %v", err)
		}
		if _, err := s.LoadBracketContext(ctx, "nobody", 2024); !errors.Is(err, pool.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for bracket, got %v", err)
		}
	})

	t.Run("picks are saved once", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")
		res, _ := s.PrimePicks(ctx, "42", 2024, 5)

		over := "over"
		if err := s.SavePicks(ctx, res.PickID, `{"1":"BAL"}`, &over); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := s.SavePicks(ctx, res.PickID, `{"1":"KC"}`, nil); !errors.Is(err, pool.ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}

		pc, err := s.LoadPickContext(ctx, "42", res.PickID)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !pc.Submitted() || *pc.PickString != `{"1":"BAL"}` {
			t.Fatalf("expected first pick string kept, got %+v", pc.PickString)
		}

		primed, _ := s.PrimePicks(ctx, "42", 2024, 5)
		if !primed.Filled {
			t.Fatalf("expected filled instance, got %+v", primed)
		}
	})

	t.Run("feature is attached to the week", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")
		res, _ := s.PrimePicks(ctx, "42", 2024, 7)

		if err := s.SetFeature(ctx, pool.Feature{Season: 2024, Week: 7, MatchID: "m1", Target: 44.5}); err != nil {
			t.Fatalf("set feature: %v", err)
		}
		if err := s.SetFeature(ctx, pool.Feature{Season: 2024, Week: 7, MatchID: "m2", Target: 47.5}); err != nil {
			t.Fatalf("replace feature: %v", err)
		}

		pc, err := s.LoadPickContext(ctx, "42", res.PickID)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if pc.FeaturedMatchID == nil || *pc.FeaturedMatchID != "m2" {
			t.Fatalf("expected feature m2, got %v", pc.FeaturedMatchID)
		}
		if pc.FeaturedTarget == nil || *pc.FeaturedTarget != 47.5 {
			t.Fatalf("expected target 47.5, got %v", pc.FeaturedTarget)
		}
	})

	t.Run("bracket is saved once", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")

		bc, err := s.LoadBracketContext(ctx, "42", 2024)
		if err != nil {
			t.Fatalf("load bracket: %v", err)
		}
		if bc.Submitted || bc.DisplayName != "Jean" || bc.Season != 2024 {
			t.Fatalf("unexpected bracket context %+v", bc)
		}

		if err := s.SaveBracket(ctx, bc.PoolerID, 2024, sampleRecord()); err != nil {
			t.Fatalf("save bracket: %v", err)
		}
		if err := s.SaveBracket(ctx, bc.PoolerID, 2024, sampleRecord()); !errors.Is(err, pool.ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}

		bc, _ = s.LoadBracketContext(ctx, "42", 2024)
		if !bc.Submitted {
			t.Fatal("expected submitted bracket")
		}
		other, _ := s.LoadBracketContext(ctx, "42", 2025)
		if other.Submitted {
			t.Fatal("expected other season untouched")
		}
	})

	t.Run("upsert pooler updates fields", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		seedPooler(t, s, "42")
		if err := s.UpsertPooler(ctx, pool.Pooler{DiscordID: "42", Name: "Jean-Guy", FavoriteTeam: "GB"}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		bc, err := s.LoadBracketContext(ctx, "42", 2024)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if bc.DisplayName != "Jean-Guy" || bc.FavoriteTeam != "GB" {
			t.Fatalf("expected updated pooler, got %+v", bc)
		}
	})
}
