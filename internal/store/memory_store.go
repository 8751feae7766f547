package store

import (
	"context"
	"sync"

	"nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
)

type memoryPick struct {
	discordID    string
	season       int
	week         int
	pickString   *string
	featuredPick *string
}

type featureKey struct {
	season int
	week   int
}

type bracketKey struct {
	discordID string
	season    int
}

// MemoryStore keeps pool data in memory behind a RWMutex. It backs tests
// and local runs with the fixture provider.
type MemoryStore struct {
	mu       sync.RWMutex
	poolers  map[string]pool.Pooler
	ids      map[string]int64
	picks    map[int64]*memoryPick
	features map[featureKey]pool.Feature
	brackets map[bracketKey]bracket.Record
	nextID   int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		poolers:  make(map[string]pool.Pooler),
		ids:      make(map[string]int64),
		picks:    make(map[int64]*memoryPick),
		features: make(map[featureKey]pool.Feature),
		brackets: make(map[bracketKey]bracket.Record),
	}
}

func (s *MemoryStore) LoadPickContext(ctx context.Context, discordID string, pickID int64) (pool.PickContext, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.picks[pickID]
	if !ok || p.discordID != discordID {
		return pool.PickContext{}, pool.ErrNotFound
	}
	pooler := s.poolers[discordID]

	pc := pool.PickContext{
		PickID:       pickID,
		Avatar:       pooler.Avatar,
		DisplayName:  pooler.Name,
		FavoriteTeam: pooler.FavoriteTeam,
		Season:       p.season,
		Week:         p.week,
		PickString:   copyString(p.pickString),
	}
	if f, ok := s.features[featureKey{season: p.season, week: p.week}]; ok {
		matchID, target := f.MatchID, f.Target
		pc.FeaturedMatchID = &matchID
		pc.FeaturedTarget = &target
	}
	return pc, nil
}

func (s *MemoryStore) SavePicks(ctx context.Context, pickID int64, pickString string, featuredPick *string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.picks[pickID]
	if !ok {
		return pool.ErrNotFound
	}
	if p.pickString != nil {
		return pool.ErrAlreadySubmitted
	}
	p.pickString = &pickString
	p.featuredPick = copyString(featuredPick)
	return nil
}

func (s *MemoryStore) LoadBracketContext(ctx context.Context, discordID string, season int) (pool.BracketContext, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	pooler, ok := s.poolers[discordID]
	if !ok {
		return pool.BracketContext{}, pool.ErrNotFound
	}
	_, submitted := s.brackets[bracketKey{discordID: discordID, season: season}]
	return pool.BracketContext{
		PoolerID:     s.ids[discordID],
		Avatar:       pooler.Avatar,
		DisplayName:  pooler.Name,
		FavoriteTeam: pooler.FavoriteTeam,
		Season:       season,
		Submitted:    submitted,
	}, nil
}

func (s *MemoryStore) SaveBracket(ctx context.Context, poolerID int64, season int, rec bracket.Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	discordID, ok := s.discordIDOf(poolerID)
	if !ok {
		return pool.ErrNotFound
	}
	key := bracketKey{discordID: discordID, season: season}
	if _, exists := s.brackets[key]; exists {
		return pool.ErrAlreadySubmitted
	}
	s.brackets[key] = rec
	return nil
}

// Bracket returns a stored bracket.
func (s *MemoryStore) Bracket(discordID string, season int) (bracket.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.brackets[bracketKey{discordID: discordID, season: season}]
	return rec, ok
}

// FeaturedPick returns the featured-match prediction stored with a pick instance.
func (s *MemoryStore) FeaturedPick(pickID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.picks[pickID]; ok && p.featuredPick != nil {
		return *p.featuredPick, true
	}
	return "", false
}

func (s *MemoryStore) UpsertPooler(ctx context.Context, p pool.Pooler) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[p.DiscordID]; !ok {
		s.nextID++
		s.ids[p.DiscordID] = s.nextID
	}
	s.poolers[p.DiscordID] = p
	return nil
}

func (s *MemoryStore) PrimePicks(ctx context.Context, discordID string, season, week int) (pool.PrimeResult, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.poolers[discordID]; !ok {
		return pool.PrimeResult{}, pool.ErrNotFound
	}
	for id, p := range s.picks {
		if p.discordID == discordID && p.season == season && p.week == week {
			return pool.PrimeResult{PickID: id, Filled: p.pickString != nil}, nil
		}
	}

	s.nextID++
	s.picks[s.nextID] = &memoryPick{discordID: discordID, season: season, week: week}
	return pool.PrimeResult{PickID: s.nextID, Created: true}, nil
}

func (s *MemoryStore) SetFeature(ctx context.Context, f pool.Feature) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features[featureKey{season: f.Season, week: f.Week}] = f
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) discordIDOf(poolerID int64) (string, bool) {
	for discordID, id := range s.ids {
		if id == poolerID {
			return discordID, true
		}
	}
	return "", false
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
