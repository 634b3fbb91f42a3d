package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"trivia-quiz-service/internal/logger"
)

// Catalog sources.
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		Port         string `yaml:"port"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Catalog struct {
		Source     string `yaml:"source"`
		SQLitePath string `yaml:"sqlite_path"`
		TTL        string `yaml:"ttl"`
	} `yaml:"catalog"`
	Quiz struct {
		SampleSize    int `yaml:"sample_size"`
		ChallengeSize int `yaml:"challenge_size"`
	} `yaml:"quiz"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout = "15s"
	cfg.Server.WriteTimeout = "15s"
	cfg.Log.Level = "INFO"
	cfg.Catalog.Source = SourceMemory
	cfg.Catalog.SQLitePath = "file:questions.db"
	cfg.Catalog.TTL = "10m"
	cfg.Quiz.SampleSize = 15
	cfg.Quiz.ChallengeSize = 10
	return cfg
}

// Load reads YAML config from path on top of the defaults, then applies a
// .env file (if any) and environment overrides. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Default().WithPrefix("config").Debug("config file %s not found, using defaults", path)
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// Absent .env is normal outside development.
	_ = godotenv.Load()
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = envOr("PORT", cfg.Server.Port)
	cfg.Log.Level = envOr("LOG_LEVEL", cfg.Log.Level)
	cfg.Catalog.Source = envOr("CATALOG_SOURCE", cfg.Catalog.Source)
	cfg.Catalog.SQLitePath = envOr("SQLITE_PATH", cfg.Catalog.SQLitePath)
	cfg.Redis.Addr = envOr("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Postgres.URL = envOr("POSTGRES_URL", cfg.Postgres.URL)
	cfg.Quiz.SampleSize = envIntOr("QUIZ_SAMPLE_SIZE", cfg.Quiz.SampleSize)
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []string
	if c.Server.Port == "" {
		problems = append(problems, "PORT cannot be empty")
	}
	if _, ok := logger.LookupLevel(c.Log.Level); !ok {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.Log.Level))
	}
	switch c.Catalog.Source {
	case SourceMemory:
	case SourcePostgres:
		if c.Postgres.URL == "" {
			problems = append(problems, "POSTGRES_URL is required when CATALOG_SOURCE=postgres")
		}
	case SourceSQLite:
		if c.Catalog.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH is required when CATALOG_SOURCE=sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("CATALOG_SOURCE %q is not one of memory, postgres, sqlite", c.Catalog.Source))
	}
	if c.Quiz.SampleSize < 1 {
		problems = append(problems, "QUIZ_SAMPLE_SIZE must be at least 1")
	}
	if c.Quiz.ChallengeSize < 1 {
		problems = append(problems, "quiz.challenge_size must be at least 1")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Default().WithPrefix("config").Warn("invalid value for %s=%q, using %d", key, v, def)
	}
	return def
}
