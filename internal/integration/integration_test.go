package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"space-trivia-service/internal/app"
	"space-trivia-service/internal/domain"
	"space-trivia-service/internal/infra/memory"
	"space-trivia-service/internal/infra/opentdb"
	pgbank "space-trivia-service/internal/infra/postgres"
	pgmigrations "space-trivia-service/internal/infra/postgres/migrations"
	redisstore "space-trivia-service/internal/infra/redis"
)

func TestQuizEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedBank(t, ctx, pgURL, bankQuestions())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	// Unreachable trivia endpoint forces the fail-soft path through the
	// Postgres-backed bank.
	client := opentdb.NewClient("http://127.0.0.1:0/api.php", time.Second)
	bank := memory.NewBankRepository(pgbank.NewBankLoader(pool), 5*time.Minute)
	source := opentdb.NewSource(client, bank)

	store := redisstore.NewLeaderboardStore(redisClient)
	keeper := app.NewScoreKeeper(store, 10)
	service := app.NewQuizService(source, keeper, 3)

	session, err := service.StartQuiz(ctx, "any", "any")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if session.TotalQuestions() != 3 {
		t.Fatalf("expected 3 questions from bank, got %d", session.TotalQuestions())
	}

	question, _ := session.CurrentQuestion()
	session.SubmitAnswer(question.CorrectAnswerIndex)
	session.Advance()
	session.Skip()
	session.TerminateEarly()

	report, board, err := service.FinishQuiz(ctx, session)
	if err != nil {
		t.Fatalf("finish quiz: %v", err)
	}
	if report.Entry.Score != 1 || report.Entry.AnsweredQuestions != 2 {
		t.Fatalf("unexpected report %+v", report.Entry)
	}
	if report.Entry.Percentage != 50 || report.Entry.CompletionRate != 67 {
		t.Fatalf("unexpected rates %+v", report.Entry)
	}
	if len(board) != 1 {
		t.Fatalf("expected 1 leaderboard entry, got %d", len(board))
	}

	// A fresh store over the same Redis must see the persisted board.
	reloaded, err := redisstore.NewLeaderboardStore(redisClient).Load(ctx)
	if err != nil {
		t.Fatalf("reload leaderboard: %v", err)
	}
	if len(reloaded) != 1 || reloaded[0].ID != report.Entry.ID {
		t.Fatalf("leaderboard not persisted: %+v", reloaded)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "triviapass", "POSTGRES_DB": "triviadb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://trivia:triviapass@%s:%s/triviadb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedBank(t *testing.T, ctx context.Context, dsn string, questions []domain.BankQuestion) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO question_bank (data) VALUES (?::jsonb)`, string(data)); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
}

func bankQuestions() []domain.BankQuestion {
	return []domain.BankQuestion{
		{Text: "What is 2 + 2?", CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5"}, Difficulty: "easy", Category: "Mathematics"},
		{Text: "Which planet is known as the Red Planet?", CorrectAnswer: "Mars", IncorrectAnswers: []string{"Venus", "Jupiter"}, Difficulty: "easy", Category: "Science: Space"},
		{Text: "What does CPU stand for?", CorrectAnswer: "Central Processing Unit", IncorrectAnswers: []string{"Computer Power Unit", "Central Program Unit"}, Difficulty: "easy", Category: "Science: Computers"},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
