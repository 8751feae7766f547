package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/providers"
	"nfl-picks-service/internal/store"
)

const (
	dbFlag        = "db"
	seasonFlag    = "season"
	weekFlag      = "week"
	discordIDFlag = "discord-id"
	nameFlag      = "name"
	avatarFlag    = "avatar"
	favoriteFlag  = "favorite"
	matchFlag     = "match"
	targetFlag    = "target"
	picksURLFlag  = "picks-url"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func main() {
	if err := newApp(config.Load(), os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the operator CLI. Defaults come from the same environment
// the server reads, so both point at one database.
func newApp(cfg config.Config, out io.Writer) *cli.App {
	dir := teams.NewDirectory()
	season := func() cli.Flag {
		return &cli.IntFlag{Name: seasonFlag, Aliases: []string{"s"}, Usage: "Pool season", Value: cfg.Pool.Season}
	}

	return &cli.App{
		Name:      "picksctl",
		Usage:     "Administer the NFL pick pool database",
		Version:   semanticVersion,
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  dbFlag,
				Usage: "Path to the sqlite database",
				Value: cfg.Pool.DatabaseURL,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create any missing tables",
				Action: func(cCtx *cli.Context) error {
					return withStore(cCtx, func(ctx context.Context, st *store.SQLStore) error {
						fmt.Fprintf(out, "schema up to date in %s\n", cCtx.String(dbFlag))
						return nil
					})
				},
			},
			{
				Name:  "pooler",
				Usage: "Register or update a pool member",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: discordIDFlag, Required: true, Usage: "Discord user id"},
					&cli.StringFlag{Name: nameFlag, Required: true, Usage: "Display name"},
					&cli.StringFlag{Name: avatarFlag, Usage: "Avatar URL"},
					&cli.StringFlag{Name: favoriteFlag, Usage: "Favorite team abbreviation"},
				},
				Action: func(cCtx *cli.Context) error {
					p := pool.Pooler{
						DiscordID: strings.TrimSpace(cCtx.String(discordIDFlag)),
						Name:      strings.TrimSpace(cCtx.String(nameFlag)),
						Avatar:    cCtx.String(avatarFlag),
					}
					if raw := cCtx.String(favoriteFlag); raw != "" {
						short, err := dir.NormalizeShortName(raw)
						if err != nil {
							return err
						}
						p.FavoriteTeam = short
					}
					return withStore(cCtx, func(ctx context.Context, st *store.SQLStore) error {
						if err := st.UpsertPooler(ctx, p); err != nil {
							return err
						}
						fmt.Fprintf(out, "pooler %s saved\n", p.DiscordID)
						return nil
					})
				},
			},
			{
				Name:  "prime",
				Usage: "Hand out a pick link for a pooler and week",
				Flags: []cli.Flag{
					season(),
					&cli.IntFlag{Name: weekFlag, Aliases: []string{"w"}, Required: true, Usage: "Pool week (1-18, 19-23 for playoffs)"},
					&cli.StringFlag{Name: discordIDFlag, Required: true, Usage: "Discord user id"},
					&cli.StringFlag{Name: picksURLFlag, Usage: "Base URL of the picks site", Value: cfg.Pool.PicksURL},
				},
				Action: func(cCtx *cli.Context) error {
					week := cCtx.Int(weekFlag)
					if _, err := providers.ResolveWeek(week); err != nil {
						return err
					}
					discordID := cCtx.String(discordIDFlag)
					return withStore(cCtx, func(ctx context.Context, st *store.SQLStore) error {
						res, err := st.PrimePicks(ctx, discordID, cCtx.Int(seasonFlag), week)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%s/picks/%s/%d\n", strings.TrimRight(cCtx.String(picksURLFlag), "/"), discordID, res.PickID)
						return nil
					})
				},
			},
			{
				Name:  "feature",
				Usage: "Set the featured match of a week",
				Flags: []cli.Flag{
					season(),
					&cli.IntFlag{Name: weekFlag, Aliases: []string{"w"}, Required: true, Usage: "Pool week"},
					&cli.StringFlag{Name: matchFlag, Required: true, Usage: "Provider match id"},
					&cli.Float64Flag{Name: targetFlag, Required: true, Usage: "Over/under target"},
				},
				Action: func(cCtx *cli.Context) error {
					f := pool.Feature{
						Season:  cCtx.Int(seasonFlag),
						Week:    cCtx.Int(weekFlag),
						MatchID: strings.TrimSpace(cCtx.String(matchFlag)),
						Target:  cCtx.Float64(targetFlag),
					}
					if _, err := providers.ResolveWeek(f.Week); err != nil {
						return err
					}
					if f.Target <= 0 {
						return fmt.Errorf("target must be positive, got %v", f.Target)
					}
					return withStore(cCtx, func(ctx context.Context, st *store.SQLStore) error {
						if err := st.SetFeature(ctx, f); err != nil {
							return err
						}
						fmt.Fprintf(out, "week %d featured match is %s at %v\n", f.Week, f.MatchID, f.Target)
						return nil
					})
				},
			},
			{
				Name:  "teams",
				Usage: "Print the team directory as YAML",
				Action: func(cCtx *cli.Context) error {
					return writeTeams(out, dir)
				},
			},
		},
	}
}

func withStore(cCtx *cli.Context, fn func(context.Context, *store.SQLStore) error) error {
	ctx := cCtx.Context
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(ctx, cCtx.String(dbFlag))
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(ctx, st)
}

func writeTeams(out io.Writer, dir *teams.Directory) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(dir.TeamsByConferenceAndDivision()); err != nil {
		return fmt.Errorf("encoding teams to YAML failed: %w", err)
	}
	return encoder.Close()
}
