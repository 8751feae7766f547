package store

import (
	"context"

	"nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
)

// Store persists poolers, pick instances, featured matches and brackets.
// Lookups that match no row return pool.ErrNotFound; writes over an
// existing submission return pool.ErrAlreadySubmitted.
type Store interface {
	LoadPickContext(ctx context.Context, discordID string, pickID int64) (pool.PickContext, error)
	SavePicks(ctx context.Context, pickID int64, pickString string, featuredPick *string) error
	LoadBracketContext(ctx context.Context, discordID string, season int) (pool.BracketContext, error)
	SaveBracket(ctx context.Context, poolerID int64, season int, rec bracket.Record) error
	UpsertPooler(ctx context.Context, p pool.Pooler) error
	PrimePicks(ctx context.Context, discordID string, season, week int) (pool.PrimeResult, error)
	SetFeature(ctx context.Context, f pool.Feature) error
	Close() error
}

var (
	_ Store = (*SQLStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
