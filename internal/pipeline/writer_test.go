package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
	"dealscope/server/internal/queue"
)

type stubStore struct {
	mu       sync.Mutex
	batches  []models.EvaluationBatch
	failures int
}

func (s *stubStore) ReplaceRunResults(ctx context.Context, batch models.EvaluationBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("database locked")
	}
	s.batches = append(s.batches, batch)
	return nil
}

func (s *stubStore) written() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

func writerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pipeline.MaxRetries = 2
	cfg.Pipeline.RetryDelay = 0
	return cfg
}

func TestResultWriter_WritesBatch(t *testing.T) {
	logger := testLogger()
	store := &stubStore{}
	q := queue.NewResultQueue(4, logger)

	writer := NewResultWriter(store, q, writerConfig(), logger)
	writer.Start()
	q.Start()
	defer q.Close()
	defer writer.Stop()

	batch := models.EvaluationBatch{RunID: "run-1", Replace: true}
	assert.NoError(t, q.Push(batch))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, store.written())
}

func TestResultWriter_RetriesTransientFailure(t *testing.T) {
	logger := testLogger()
	store := &stubStore{failures: 2}

	writer := NewResultWriter(store, queue.NewResultQueue(4, logger), writerConfig(), logger)

	err := writer.writeBatch(models.EvaluationBatch{RunID: "run-1"})

	assert.NoError(t, err)
	assert.Equal(t, 1, store.written())
}

func TestResultWriter_GivesUpAfterMaxRetries(t *testing.T) {
	logger := testLogger()
	store := &stubStore{failures: 10}

	writer := NewResultWriter(store, queue.NewResultQueue(4, logger), writerConfig(), logger)

	err := writer.writeBatch(models.EvaluationBatch{RunID: "run-1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write batch")
	assert.Equal(t, 0, store.written())
}
