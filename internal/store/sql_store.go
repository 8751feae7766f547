package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/glebarez/go-sqlite"

	"nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
)

// SQLStore keeps pool data in a sqlite database.
type SQLStore struct {
	db *sql.DB
}

// Open connects to the sqlite file at path and applies the schema.
func Open(ctx context.Context, path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: empty database path")
	}
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// sqlite serialises writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLStore{db: db}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates any missing tables.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) LoadPickContext(ctx context.Context, discordID string, pickID int64) (pool.PickContext, error) {
	const q = `
		SELECT pi.id, u.avatar, po.name, po.favteam, pi.season, pi.week,
		       pi.pickstring, f.matchid, f.target
		FROM users AS u
			JOIN poolers AS po ON u.id = po.userid
			JOIN picks AS pi ON po.id = pi.poolerid
			LEFT JOIN features AS f ON f.season = pi.season AND f.week = pi.week
		WHERE u.discordid = ? AND pi.id = ?`

	var (
		pc         pool.PickContext
		pickString sql.NullString
		matchID    sql.NullString
		target     sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, q, discordID, pickID).Scan(
		&pc.PickID, &pc.Avatar, &pc.DisplayName, &pc.FavoriteTeam, &pc.Season, &pc.Week,
		&pickString, &matchID, &target,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return pool.PickContext{}, pool.ErrNotFound
	}
	if err != nil {
		return pool.PickContext{}, fmt.Errorf("store: load pick context: %w", err)
	}

	if pickString.Valid {
		pc.PickString = &pickString.String
	}
	if matchID.Valid {
		pc.FeaturedMatchID = &matchID.String
	}
	if target.Valid {
		pc.FeaturedTarget = &target.Float64
	}
	return pc, nil
}

func (s *SQLStore) SavePicks(ctx context.Context, pickID int64, pickString string, featuredPick *string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE picks SET pickstring = ?, featuredpick = ? WHERE id = ? AND pickstring IS NULL`,
		pickString, nullString(featuredPick), pickID,
	)
	if err != nil {
		return fmt.Errorf("store: save picks: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n > 0 {
		return err
	}

	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM picks WHERE id = ?`, pickID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return pool.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("store: save picks: %w", err)
	}
	return pool.ErrAlreadySubmitted
}

const winnersFilled = `COALESCE(c.winafcn, c.winafcs, c.winafce, c.winafcw,
	c.winnfcn, c.winnfcs, c.winnfce, c.winnfcw) IS NOT NULL`

func (s *SQLStore) LoadBracketContext(ctx context.Context, discordID string, season int) (pool.BracketContext, error) {
	q := `
		SELECT po.id, u.avatar, po.name, po.favteam,
		       CASE WHEN ` + winnersFilled + ` THEN 1 ELSE 0 END
		FROM users AS u
			JOIN poolers AS po ON u.id = po.userid
			LEFT JOIN capsules AS c ON c.poolerid = po.id AND c.season = ?
		WHERE u.discordid = ?`

	bc := pool.BracketContext{Season: season}
	err := s.db.QueryRowContext(ctx, q, season, discordID).Scan(
		&bc.PoolerID, &bc.Avatar, &bc.DisplayName, &bc.FavoriteTeam, &bc.Submitted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return pool.BracketContext{}, pool.ErrNotFound
	}
	if err != nil {
		return pool.BracketContext{}, fmt.Errorf("store: load bracket context: %w", err)
	}
	return bc, nil
}

// SaveBracket inserts the bracket, or fills a capsule row whose winners are
// all still null. Any stored winner makes the write a no-op.
func (s *SQLStore) SaveBracket(ctx context.Context, poolerID int64, season int, rec bracket.Record) error {
	const q = `
		INSERT INTO capsules (poolerid, season,
			winafcn, winafcs, winafce, winafcw,
			winnfcn, winnfcs, winnfce, winnfcw,
			afcwildcards, nfcwildcards)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (poolerid, season) DO UPDATE SET
			winafcn = excluded.winafcn, winafcs = excluded.winafcs,
			winafce = excluded.winafce, winafcw = excluded.winafcw,
			winnfcn = excluded.winnfcn, winnfcs = excluded.winnfcs,
			winnfce = excluded.winnfce, winnfcw = excluded.winnfcw,
			afcwildcards = excluded.afcwildcards, nfcwildcards = excluded.nfcwildcards
		WHERE COALESCE(capsules.winafcn, capsules.winafcs, capsules.winafce, capsules.winafcw,
			capsules.winnfcn, capsules.winnfcs, capsules.winnfce, capsules.winnfcw) IS NULL`

	args := []any{poolerID, season}
	for _, conf := range teams.Conferences {
		for _, div := range teams.Divisions {
			args = append(args, rec.Winner(conf, div))
		}
	}
	args = append(args, rec.WildcardList(teams.AFC), rec.WildcardList(teams.NFC))

	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("store: save bracket: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: save bracket: %w", err)
	}
	if n == 0 {
		return pool.ErrAlreadySubmitted
	}
	return nil
}

func (s *SQLStore) UpsertPooler(ctx context.Context, p pool.Pooler) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: upsert pooler: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (discordid, avatar) VALUES (?, ?)
		 ON CONFLICT (discordid) DO UPDATE SET avatar = excluded.avatar`,
		p.DiscordID, p.Avatar,
	); err != nil {
		return fmt.Errorf("store: upsert user: %w", err)
	}

	var userID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE discordid = ?`, p.DiscordID).Scan(&userID); err != nil {
		return fmt.Errorf("store: lookup user: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO poolers (userid, name, favteam) VALUES (?, ?, ?)
		 ON CONFLICT (userid) DO UPDATE SET name = excluded.name, favteam = excluded.favteam`,
		userID, p.Name, p.FavoriteTeam,
	); err != nil {
		return fmt.Errorf("store: upsert pooler: %w", err)
	}
	return tx.Commit()
}

func (s *SQLStore) PrimePicks(ctx context.Context, discordID string, season, week int) (pool.PrimeResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}
	defer tx.Rollback()

	var poolerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT p.id FROM users AS u JOIN poolers AS p ON u.id = p.userid WHERE u.discordid = ?`,
		discordID,
	).Scan(&poolerID)
	if errors.Is(err, sql.ErrNoRows) {
		return pool.PrimeResult{}, pool.ErrNotFound
	}
	if err != nil {
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}

	var (
		result     pool.PrimeResult
		pickString sql.NullString
	)
	err = tx.QueryRowContext(ctx,
		`SELECT id, pickstring FROM picks WHERE poolerid = ? AND season = ? AND week = ?`,
		poolerID, season, week,
	).Scan(&result.PickID, &pickString)
	switch {
	case err == nil:
		result.Filled = pickString.Valid
		return result, nil
	case !errors.Is(err, sql.ErrNoRows):
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO picks (season, week, poolerid) VALUES (?, ?, ?)`,
		season, week, poolerID,
	)
	if err != nil {
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}
	if result.PickID, err = res.LastInsertId(); err != nil {
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}
	result.Created = true
	if err := tx.Commit(); err != nil {
		return pool.PrimeResult{}, fmt.Errorf("store: prime picks: %w", err)
	}
	return result, nil
}

func (s *SQLStore) SetFeature(ctx context.Context, f pool.Feature) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO features (season, week, matchid, target) VALUES (?, ?, ?, ?)
		 ON CONFLICT (season, week) DO UPDATE SET matchid = excluded.matchid, target = excluded.target`,
		f.Season, f.Week, f.MatchID, f.Target,
	)
	if err != nil {
		return fmt.Errorf("store: set feature: %w", err)
	}
	return nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
