package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dealscope/server/config"
	"dealscope/server/internal/api"
	"dealscope/server/internal/market"
	"dealscope/server/internal/pipeline"
	"dealscope/server/internal/queue"
	"dealscope/server/internal/scheduler"
	"dealscope/server/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Load the scoring-constant overlay; missing file means defaults.
	config.LoadScoringConfig(cfg.ScoringPath, logger)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.Database.Path)

	st, err := store.NewStore(cfg.Database.Path, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize store")
	}
	defer st.Close()

	logger.Info("Running database migrations...")
	if err := st.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	marketScorer := market.NewScorer(time.Duration(cfg.Cache.ZIPTTLMinutes)*time.Minute, logger)

	resultQueue := queue.NewResultQueue(cfg.Pipeline.QueueSize, logger)
	writer := pipeline.NewResultWriter(st, resultQueue, cfg, logger)
	writer.Start()
	resultQueue.Start()
	defer func() {
		resultQueue.Close()
		writer.Stop()
	}()

	runner := pipeline.NewRunner(st, resultQueue, marketScorer, cfg, logger)

	sched := scheduler.NewScheduler(runner, logger)
	if err := sched.Start(cfg.Pipeline.CronSpec); err != nil {
		logger.WithError(err).Fatal("Failed to start scheduler")
	}
	defer sched.Stop()

	handler := api.NewHandler(st, runner, logger)
	router := api.SetupRouter(handler, cfg.Server.AllowedOrigins)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
