package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/sentry"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	down := flag.Bool("down", false, "Roll back every applied migration")
	flag.Parse()

	if *dryRun {
		if err := postgres.PrintMigrations(os.Stdout); err != nil {
			log.Fatalf("Failed to print migrations: %v", err)
		}
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := postgres.NewDB(cfg, logger, sentry.NewSentryService(cfg, logger))
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}

	migrator, err := postgres.NewMigrator(db, logger)
	if err != nil {
		logger.Fatalw("Failed to prepare migrations", "error", err)
	}
	// closes db as well
	defer migrator.Close()

	if *down {
		logger.Info("Rolling back database migrations...")
		err = migrator.Down()
	} else {
		logger.Info("Running database migrations...")
		err = migrator.Up()
	}
	if err != nil {
		logger.Fatalw("Migration failed", "error", err)
	}

	fmt.Println("Migration process completed")
}
