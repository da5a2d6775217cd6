package cmd

import (
	"context"
	"fmt"

	"upsolve-tracker/core/codeforces"
	"upsolve-tracker/core/config"
	"upsolve-tracker/core/database"
	"upsolve-tracker/core/logger"
	"upsolve-tracker/core/storage"
	"upsolve-tracker/feature/students"
	"upsolve-tracker/feature/upsolve"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps is the set of dependencies shared by every command.
type deps struct {
	cfg   *config.Config
	log   *zap.Logger
	clock clockwork.Clock
	judge *codeforces.Client
}

// bootstrap loads configuration, builds the logger and the judge client.
func bootstrap(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	clock := clockwork.NewRealClock()
	rt := &deps{cfg: cfg, log: l, clock: clock}
	rt.judge = codeforces.NewClient(cfg.Codeforces, codeforces.NewCaches(cfg.Codeforces, clock), l, rt.judgeOptions(ctx)...)
	return rt, nil
}

// judgeOptions wires catalog snapshots when object storage is enabled and reachable.
func (rt *deps) judgeOptions(ctx context.Context) []codeforces.Option {
	sc := rt.cfg.Storage
	if !sc.Enabled {
		return nil
	}

	client, err := storage.NewClient(sc)
	if err != nil {
		rt.log.Warn("Catalog snapshots disabled", zap.Error(err))
		return nil
	}
	if err := storage.EnsureBucket(ctx, client, sc.Bucket, sc.Region); err != nil {
		rt.log.Warn("Catalog snapshots disabled", zap.Error(err))
		return nil
	}

	rt.log.Info("Catalog snapshots enabled", zap.String("bucket", sc.Bucket), zap.String("prefix", sc.SnapshotPrefix))
	return []codeforces.Option{codeforces.WithSnapshots(codeforces.NewSnapshotStore(client, sc.Bucket, sc.SnapshotPrefix))}
}

// connect opens the database and migrates every table.
func (rt *deps) connect() (*gorm.DB, error) {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// models lists every persisted table.
func models() []any {
	return append([]any{&students.Student{}}, upsolve.Models()...)
}
