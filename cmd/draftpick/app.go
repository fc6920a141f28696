package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/fantasydraft/draftpick/config"
	"github.com/fantasydraft/draftpick/db"
	"github.com/fantasydraft/draftpick/draft"
	"github.com/fantasydraft/draftpick/repositories"
	"github.com/fantasydraft/draftpick/services"
	"github.com/fantasydraft/draftpick/sharetoken"
)

const dbConnectTimeout = 5 * time.Second

// app wires configuration, the selected roster backend and the
// service together for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *services.RosterService
	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	logger := commonRun()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}
	codec := sharetoken.NewCodec(cfg.ShareSecret)

	var repo repositories.RosterRepository
	switch cfg.Store {
	case config.StorePostgres:
		conn, err := db.ConnectPostgres(cfg.DatabaseURL, dbConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, conn.Close)
		if err := db.CreatePostgresSchema(ctx, conn); err != nil {
			a.Close()
			return nil, err
		}
		repo = repositories.NewPostgresRosterRepository(conn)

	case config.StoreSQLite:
		conn, err := db.OpenSQLite(filepath.Join(cfg.DataDir, "draftpick.db"))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		if err := db.CreateSQLiteSchema(ctx, conn); err != nil {
			a.Close()
			return nil, err
		}
		repo = repositories.NewSQLiteRosterRepository(conn)

	case config.StoreBadger:
		opts := badger.DefaultOptions(filepath.Join(cfg.DataDir, "badger")).
			WithLogger(nil)
		bdb, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		a.closers = append(a.closers, bdb.Close)
		repo = repositories.NewBadgerRosterRepository(bdb)

	case config.StoreToken:
		repo = repositories.NewTokenRosterRepository(cfg.StateFile, codec)

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	a.service = services.NewRosterService(repo, draft.NewAllocator(), codec, logger)
	logger.Debug("store initialized", slog.String("store", cfg.Store))
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("failed to close store", slog.Any("error", err))
		}
	}
}
