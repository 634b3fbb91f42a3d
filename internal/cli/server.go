package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/memory"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	rediscache "trivia-quiz-service/internal/infra/redis"
	"trivia-quiz-service/internal/infra/sqlite"
	"trivia-quiz-service/internal/logger"
	transport "trivia-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
	cmd.Flags().StringVar(port, "port", "", "port to listen on (overrides config)")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Server.Port = portFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(cfg.Log.Level))))
	log := logger.Default().WithPrefix("server")

	loader, closeLoader, err := buildLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	ttl := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var repo app.CatalogRepository
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		repo = rediscache.NewCatalogRepository(redisClient, loader, ttl)
	} else {
		repo = memory.NewCatalogRepository(loader, ttl)
	}

	// Loaded once for the process lifetime; the ttl governs the shared Redis
	// copy. A broken bank is fatal at startup rather than per request.
	catalog, err := app.LoadCatalog(ctx, repo)
	if err != nil {
		return err
	}
	log.Info("loaded %d questions from %s", catalog.Len(), cfg.Catalog.Source)

	quiz := app.NewQuizService(catalog, cfg.Quiz.SampleSize, cfg.Quiz.ChallengeSize)
	progress := app.NewProgressService()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewServer(quiz, progress).Routes(),
		ReadTimeout:  config.TTLDuration(cfg.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: config.TTLDuration(cfg.Server.WriteTimeout, 15*time.Second),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting quiz service on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-stop:
		log.Info("shutting down server...")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildLoader picks the backing store named by catalog.source.
func buildLoader(ctx context.Context, cfg config.Config) (memory.CatalogLoader, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pgloader.NewCatalogLoader(pool), pool.Close, nil

	case config.SourceSQLite:
		db, err := sqlite.Open(ctx, cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewCatalogLoader(db.DB), closer(db), nil

	default:
		return memory.NewStaticCatalogLoader(nil), func() {}, nil
	}
}

func closer(c io.Closer) func() {
	return func() { _ = c.Close() }
}
