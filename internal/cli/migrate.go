package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"space-trivia-service/internal/config"
	"space-trivia-service/internal/infra/memory"
	pgmigrations "space-trivia-service/internal/infra/postgres/migrations"
)

// NewMigrateCmd applies database migrations and seeds the question bank.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and seed the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return runMigrationsWithConfig(ctx, cfg)
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("migrations applied")

	return seedQuestionBank(ctx, db)
}

// seedQuestionBank loads the bundled questions into an empty bank so a fresh
// database can serve quizzes offline immediately.
func seedQuestionBank(ctx context.Context, db *bun.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question_bank`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, q := range memory.BundledQuestions() {
		data, err := json.Marshal(q)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO question_bank (data) VALUES (?::jsonb)`, string(data)); err != nil {
			return err
		}
	}
	log.Printf("question bank seeded with %d questions", len(memory.BundledQuestions()))
	return nil
}
