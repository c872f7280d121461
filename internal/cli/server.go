package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"space-trivia-service/internal/app"
	"space-trivia-service/internal/config"
	"space-trivia-service/internal/infra/memory"
	"space-trivia-service/internal/infra/opentdb"
	pgbank "space-trivia-service/internal/infra/postgres"
	redisstore "space-trivia-service/internal/infra/redis"
	transport "space-trivia-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var store app.LeaderboardStore
	if redisClient != nil {
		store = redisstore.NewLeaderboardStore(redisClient)
	} else {
		log.Printf("no redis configured, high scores will not survive restarts")
		store = memory.NewLeaderboardStore()
	}

	var bank opentdb.BankLoader = memory.NewStaticBank(memory.BundledQuestions())
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		bankTTL := config.TTLDuration(cfg.Quiz.BankTTL, 10*time.Minute)
		bank = memory.NewBankRepository(pgbank.NewBankLoader(pool), bankTTL)
	}

	triviaTimeout := config.TTLDuration(cfg.Trivia.Timeout, 10*time.Second)
	client := opentdb.NewClient(cfg.Trivia.URL, triviaTimeout)
	source := opentdb.NewSource(client, bank)

	keeper := app.NewScoreKeeper(store, cfg.Quiz.LeaderboardSize)
	service := app.NewQuizService(source, keeper, cfg.Quiz.Questions)

	wsHandler := transport.NewWSHandler(service, cfg.Quiz.SecondsPerQuestion)
	apiHandler := transport.NewAPIHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/api/leaderboard", apiHandler.Leaderboard)
	mux.HandleFunc("/api/categories", apiHandler.Categories)
	mux.HandleFunc("/api/difficulties", apiHandler.Difficulties)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting trivia service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
