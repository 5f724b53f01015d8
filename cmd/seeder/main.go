// cmd/seeder/main.go
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/config"
	"github.com/marketmind/marketmind-backend/internal/db"
	"github.com/marketmind/marketmind-backend/internal/logger"
)

// The seeder applies the schema and demo rows from seed/*.sql.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, "console")
	defer log.Sync()

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	seedFiles := []string{
		"seed/schema.sql",
		"seed/demo.sql",
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal("failed to read seed file", zap.String("file", file), zap.Error(err))
		}

		if _, err := database.Exec(string(content)); err != nil {
			log.Fatal("failed to execute seed file", zap.String("file", file), zap.Error(err))
		}
		log.Info("seeded", zap.String("file", file))
	}

	log.Info("database seeding completed successfully")
}
