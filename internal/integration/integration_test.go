package integration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"trivia-quiz-service/internal/app"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	pgmigrations "trivia-quiz-service/internal/infra/postgres/migrations"
	infraredis "trivia-quiz-service/internal/infra/redis"
)

func TestSubmitEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	migrateAndSeed(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewCatalogLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()
	repo := infraredis.NewCatalogRepository(redisClient, loader, 5*time.Minute)

	catalog, err := app.LoadCatalog(ctx, repo)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if catalog.Len() != 50 {
		t.Fatalf("expected seeded bank of 50, got %d", catalog.Len())
	}
	n, err := redisClient.HLen(ctx, infraredis.DefaultKey).Result()
	if err != nil || n != 50 {
		t.Fatalf("expected 50 cached questions, got %d (%v)", n, err)
	}

	service := app.NewQuizService(catalog, 15, 10)
	result, err := service.Submit(ctx, map[string]string{
		"1":  "C", // Paris
		"2":  "B", // Mars
		"45": "A", // Antarctica is C
	}, "Alice")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 2 || result.TotalQuestions != 3 || result.Percentage != 67 {
		t.Fatalf("expected 2/3 (67%%), got %d/%d (%d%%)", result.Score, result.TotalQuestions, result.Percentage)
	}
	if result.Badge.Name != "Getting There" {
		t.Fatalf("expected Getting There, got %s", result.Badge.Name)
	}

	// A second load is served from Redis even with Postgres gone.
	pool.Close()
	again, err := app.LoadCatalog(ctx, repo)
	if err != nil {
		t.Fatalf("reload from cache: %v", err)
	}
	if again.Len() != 50 {
		t.Fatalf("expected cached bank of 50, got %d", again.Len())
	}
}

// startContainer runs req and returns host:port for exposed plus a cleanup.
func startContainer(t *testing.T, ctx context.Context, req tc.ContainerRequest, exposed string) (string, func()) {
	t.Helper()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start %s: %v", req.Image, err)
	}
	cleanup := func() { _ = container.Terminate(ctx) }

	endpoint, err := container.PortEndpoint(ctx, nat.Port(exposed), "")
	if err != nil {
		cleanup()
		t.Fatalf("%s endpoint: %v", req.Image, err)
	}
	return endpoint, cleanup
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	endpoint, cleanup := startContainer(t, ctx, tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "trivia", "POSTGRES_PASSWORD": "trivia", "POSTGRES_DB": "trivia"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432/tcp")
	return fmt.Sprintf("postgres://trivia:trivia@%s/trivia?sslmode=disable", endpoint), cleanup
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	endpoint, cleanup := startContainer(t, ctx, tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}, "6379/tcp")
	return "redis://" + endpoint, cleanup
}

func migrateAndSeed(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
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

	var count int
	if err := db.NewSelect().Model((*pgmigrations.QuestionRow)(nil)).ColumnExpr("count(*)").Scan(ctx, &count); err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if count != 50 {
		t.Fatalf("expected seed migration to insert 50 rows, got %d", count)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
