package testutil

import (
	"context"
	"testing"

	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/store"
)

// SeedPooler registers a pooler and primes one pick instance for the week.
func SeedPooler(t *testing.T, st store.Store, p pool.Pooler, season, week int) int64 {
	t.Helper()
	ctx := context.Background()
	if err := st.UpsertPooler(ctx, p); err != nil {
		t.Fatalf("seed pooler: %v", err)
	}
	res, err := st.PrimePicks(ctx, p.DiscordID, season, week)
	if err != nil {
		t.Fatalf("prime picks: %v", err)
	}
	return res.PickID
}
