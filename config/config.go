package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		Port           string `env:"SERVER_PORT" envDefault:"5250"`
		AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	}

	// Database configuration
	Database struct {
		Path string `env:"DB_PATH" envDefault:"database/dealscope.db"`
	}

	// Pipeline configuration
	Pipeline struct {
		// Number of concurrent deal evaluation workers
		WorkerCount int `env:"PIPELINE_WORKERS" envDefault:"4"`

		// Maximum time to wait for the run lock before skipping (in seconds)
		LockWaitSeconds int `env:"PIPELINE_LOCK_WAIT" envDefault:"5"`

		// Number of evaluations per batch pushed to the result queue
		BatchSize int `env:"PIPELINE_BATCH_SIZE" envDefault:"25"`

		// Result queue buffer size (in batches)
		QueueSize int `env:"PIPELINE_QUEUE_SIZE" envDefault:"16"`

		// Maximum number of retries for failed result writes
		MaxRetries int `env:"PIPELINE_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"PIPELINE_RETRY_DELAY" envDefault:"5"`

		// Cron expression for scheduled runs; empty disables the scheduler
		CronSpec string `env:"PIPELINE_CRON" envDefault:""`
	}

	// Cache configuration
	Cache struct {
		// TTL for ZIP-level market lookups (in minutes)
		ZIPTTLMinutes int `env:"ZIP_CACHE_TTL" envDefault:"60"`
	}

	// Scoring configuration file (JSON overlay over compiled defaults)
	ScoringPath string `env:"SCORING_CONFIG" envDefault:"config/scoring.json"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
