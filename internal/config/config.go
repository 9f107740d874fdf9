package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// Seed fixes the random source. When TRAIL_SEED is unset one is
	// taken from the clock.
	Seed         uint64        `env:"TRAIL_SEED"`
	SaveDir      string        `env:"TRAIL_SAVE_DIR" envDefault:".saves"`
	ScoresDB     string        `env:"TRAIL_SCORES_DB" envDefault:".saves/scores.db"`
	TickInterval time.Duration `env:"TRAIL_TICK_INTERVAL" envDefault:"100ms"`
	LogicalEvery int           `env:"TRAIL_LOGICAL_EVERY" envDefault:"10"`
	LogLevel     slog.Level    `env:"TRAIL_LOG_LEVEL" envDefault:"INFO"`
	// LogFile receives the structured log. The terminal belongs to the
	// game, so nothing is logged when it is empty.
	LogFile string `env:"TRAIL_LOG_FILE"`
	// GeminiAPIKey enables the epilogue narrator.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, ok := os.LookupEnv("TRAIL_SEED"); !ok {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("TRAIL_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	if cfg.LogicalEvery <= 0 {
		return nil, fmt.Errorf("TRAIL_LOGICAL_EVERY must be positive, got %d", cfg.LogicalEvery)
	}
	return &cfg, nil
}
