// Command server runs the vacancy API and carries the operator commands used
// to seed users and skills.
//
//	server                      # run the HTTP API (same as "server serve")
//	server user create --username test --password 123qwe
//	server skill create go sql docker
//	server skill list
//
// Configuration is read from HUNTING_* environment variables, an optional
// .env file and an optional config.{yaml,json,toml} in the working directory.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"amazing-hunting/internal/config"
	"amazing-hunting/internal/repository/sqlite"
)

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Vacancy record service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads configuration and returns a database with the schema in place.
func openStore(ctx context.Context) (config.Config, *logrus.Logger, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.NewLogger()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.InitSchema(ctx, db); err != nil {
		db.Close()
		return config.Config{}, nil, nil, fmt.Errorf("init schema: %w", err)
	}
	return cfg, logger, db, nil
}
