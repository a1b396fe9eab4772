package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"dealscope/server/config"
	"dealscope/server/internal/models"
	"dealscope/server/internal/queue"
)

// ResultStore is the write side of the persistence contract.
type ResultStore interface {
	ReplaceRunResults(ctx context.Context, batch models.EvaluationBatch) error
}

// ResultWriter drains evaluation batches from the queue into the store with
// transaction and retry logic.
type ResultWriter struct {
	store     ResultStore
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.ResultQueue
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewResultWriter creates a new result writer instance.
func NewResultWriter(store ResultStore, q *queue.ResultQueue, cfg *config.Config, logger *logrus.Logger) *ResultWriter {
	ctx, cancel := context.WithCancel(context.Background())
	return &ResultWriter{
		store:  store,
		queue:  q,
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes the writer to the queue.
func (w *ResultWriter) Start() {
	w.queue.Subscribe(func(batch models.EvaluationBatch) error {
		return w.writeBatch(batch)
	})
}

// Stop waits for in-flight writes to finish.
func (w *ResultWriter) Stop() {
	w.cancel()
	w.waitGroup.Wait()
}

// writeBatch persists a single batch with retry logic.
func (w *ResultWriter) writeBatch(batch models.EvaluationBatch) error {
	w.waitGroup.Add(1)
	defer w.waitGroup.Done()

	var err error
	for attempt := 0; attempt <= w.config.Pipeline.MaxRetries; attempt++ {
		if attempt > 0 {
			w.logger.Infof("Retrying batch write, attempt %d of %d", attempt, w.config.Pipeline.MaxRetries)
			select {
			case <-time.After(time.Duration(w.config.Pipeline.RetryDelay) * time.Second):
			case <-w.ctx.Done():
				return w.ctx.Err()
			}
		}

		err = w.store.ReplaceRunResults(w.ctx, batch)
		if err == nil {
			w.logger.WithFields(logrus.Fields{
				"run_id": batch.RunID,
				"deals":  len(batch.Evaluations),
			}).Info("Successfully wrote result batch")
			return nil
		}

		w.logger.Errorf("Batch write failed: %v", err)
	}

	return fmt.Errorf("failed to write batch after %d attempts: %w", w.config.Pipeline.MaxRetries, err)
}
