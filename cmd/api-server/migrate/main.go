package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/config"
	"github.com/harmonixfi/harmonix-api/pkg/migrations/apidb"
	"github.com/harmonixfi/harmonix-api/pkg/pgutil"
	mghelper "github.com/harmonixfi/harmonix-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
	}

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration file: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error setting up logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	logger.Info("Running migrations for API server database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		logger.Error("migration failed", zap.Error(err))
		_ = db.Close()
		os.Exit(1)
	}
}
