package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	var migrationPath, databaseURL string
	var down int
	flag.StringVar(&databaseURL, "database_url", "", "Database URL, with or without the postgres:// scheme")
	flag.StringVar(&migrationPath, "migration-path", "migrations", "Path to the migration files")
	flag.IntVar(&down, "down", 0, "Roll back this many migrations instead of applying")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if databaseURL == "" {
		logger.Fatal("database URL is required")
	}
	if !strings.Contains(databaseURL, "://") {
		databaseURL = "postgres://" + databaseURL
	}

	m, err := migrate.New("file://"+migrationPath, databaseURL)
	if err != nil {
		logger.Fatal("open migrations", zap.Error(err))
	}
	defer m.Close()

	if down > 0 {
		err = m.Steps(-down)
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply")
			return
		}
		logger.Fatal("migrate", zap.Error(err))
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
