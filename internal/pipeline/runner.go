// Package pipeline orchestrates a full evaluation run: load the deal and
// buyer snapshots, fan out per-deal scoring across workers, rank the verdicts
// globally, match buyers, and hand the results to the writer via the queue.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dealscope/server/config"
	"dealscope/server/internal/market"
	"dealscope/server/internal/matching"
	"dealscope/server/internal/models"
	"dealscope/server/internal/queue"
	"dealscope/server/internal/repair"
	"dealscope/server/internal/strategy"
	"dealscope/server/internal/verdict"
)

// ErrRunInProgress is returned when the run lock cannot be acquired within
// the bounded wait. Callers treat it as a skip, not a failure.
var ErrRunInProgress = errors.New("a pipeline run is already in progress")

// Source supplies the input snapshot for a run.
type Source interface {
	ListDeals(ctx context.Context) ([]models.Deal, error)
	ListActiveBuyers(ctx context.Context) ([]models.Buyer, error)
}

// RunReport summarizes one completed pipeline run.
type RunReport struct {
	RunID    string        `json:"run_id"`
	Deals    int           `json:"deals"`
	Skipped  int           `json:"skipped"`
	Matches  int           `json:"matches"`
	Duration time.Duration `json:"duration"`
}

// Runner executes evaluation runs. A channel-based semaphore guarantees two
// triggered runs never interleave writes to the result store.
type Runner struct {
	source  Source
	queue   *queue.ResultQueue
	market  *market.Scorer
	config  *config.Config
	scoring func() *config.ScoringConfig
	logger  *logrus.Logger
	lock    chan struct{}
}

func NewRunner(source Source, q *queue.ResultQueue, marketScorer *market.Scorer, cfg *config.Config, logger *logrus.Logger) *Runner {
	return &Runner{
		source:  source,
		queue:   q,
		market:  marketScorer,
		config:  cfg,
		scoring: config.GetScoringConfig,
		logger:  logger,
		lock:    make(chan struct{}, 1),
	}
}

// Run executes one full pipeline run. If another run holds the lock past the
// bounded wait, the run is skipped with ErrRunInProgress.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	wait := time.Duration(r.config.Pipeline.LockWaitSeconds) * time.Second
	select {
	case r.lock <- struct{}{}:
	case <-time.After(wait):
		r.logger.Warn("Skipping pipeline run: lock not acquired in time")
		return nil, ErrRunInProgress
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-r.lock }()

	started := time.Now()
	runID := uuid.NewString()
	log := r.logger.WithField("run_id", runID)

	deals, err := r.source.ListDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deals: %w", err)
	}
	buyers, err := r.source.ListActiveBuyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load buyers: %w", err)
	}

	sc := r.scoring()
	evaluations, skipped := r.EvaluateAll(ctx, deals, sc)

	// Global ranking across all deals, then buyer matching per deal.
	assignRanks(evaluations)
	matchCount := 0
	for i := range evaluations {
		ev := &evaluations[i]
		ev.Matches = matching.Match(&ev.Deal, &ev.Verdict, buyers, sc)
		matchCount += len(ev.Matches)
	}

	if err := r.publish(ctx, runID, evaluations); err != nil {
		return nil, err
	}

	report := &RunReport{
		RunID:    runID,
		Deals:    len(evaluations),
		Skipped:  skipped,
		Matches:  matchCount,
		Duration: time.Since(started),
	}
	log.WithFields(logrus.Fields{
		"deals":   report.Deals,
		"skipped": report.Skipped,
		"matches": report.Matches,
	}).Info("Pipeline run complete")
	return report, nil
}

// EvaluateAll scores deals concurrently while preserving input order, which
// keeps ranking ties deterministic. Deals without an id, and deals whose
// evaluation fails, are skipped without aborting the run.
func (r *Runner) EvaluateAll(ctx context.Context, deals []models.Deal, sc *config.ScoringConfig) ([]models.DealEvaluation, int) {
	workers := r.config.Pipeline.WorkerCount
	if workers < 1 {
		workers = 1
	}

	type slot struct {
		ev models.DealEvaluation
		ok bool
	}
	slots := make([]slot, len(deals))
	jobs := make(chan int)

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				ev, err := r.evaluateDeal(deals[i], sc)
				if err != nil {
					r.logger.WithError(err).WithField("deal_id", deals[i].ID).
						Warn("Skipping deal")
					continue
				}
				slots[i] = slot{ev: ev, ok: true}
			}
			done <- struct{}{}
		}()
	}

	for i := range deals {
		select {
		case jobs <- i:
		case <-ctx.Done():
			i = len(deals)
		}
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	evaluations := make([]models.DealEvaluation, 0, len(deals))
	skipped := 0
	for _, s := range slots {
		if s.ok {
			evaluations = append(evaluations, s.ev)
		} else {
			skipped++
		}
	}
	return evaluations, skipped
}

// evaluateDeal runs the per-deal stage sequence. A panic in any stage is
// contained to this deal.
func (r *Runner) evaluateDeal(deal models.Deal, sc *config.ScoringConfig) (ev models.DealEvaluation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("evaluation panicked: %v", rec)
		}
	}()

	if err = deal.Normalize(); err != nil {
		return ev, err
	}

	rep := repair.Estimate(&deal, sc)
	mkt := r.market.Score(&deal, &rep, sc)
	strategies := strategy.EvaluateAll(&deal, &rep, &mkt, sc)
	cmp := strategy.Compare(deal.ID, strategies)
	record := verdict.Assess(&deal, &rep, &mkt, &cmp, sc)

	return models.DealEvaluation{
		Deal:       deal,
		Repair:     rep,
		Market:     mkt,
		Strategies: strategies,
		Verdict:    record,
	}, nil
}

// assignRanks ranks all verdicts globally and writes the rank back into each
// evaluation.
func assignRanks(evaluations []models.DealEvaluation) {
	records := make([]models.VerdictRecord, len(evaluations))
	for i := range evaluations {
		records[i] = evaluations[i].Verdict
	}
	verdict.Rank(records)

	ranks := make(map[string]int, len(records))
	for _, rec := range records {
		ranks[rec.DealID] = rec.Rank
	}
	for i := range evaluations {
		evaluations[i].Verdict.Rank = ranks[evaluations[i].Verdict.DealID]
	}
}

// publish chunks the evaluations and pushes them onto the result queue. The
// first chunk carries the replace flag so the writer clears the prior run.
func (r *Runner) publish(ctx context.Context, runID string, evaluations []models.DealEvaluation) error {
	size := r.config.Pipeline.BatchSize
	if size < 1 {
		size = len(evaluations)
		if size == 0 {
			size = 1
		}
	}

	first := true
	for start := 0; start < len(evaluations); start += size {
		end := start + size
		if end > len(evaluations) {
			end = len(evaluations)
		}
		batch := models.EvaluationBatch{
			RunID:       runID,
			Replace:     first,
			Evaluations: evaluations[start:end],
		}
		first = false

		// The queue refuses batches while full; back off until the writer
		// drains it.
		for {
			err := r.queue.Push(batch)
			if err == nil {
				break
			}
			if err != queue.ErrQueueFull {
				return fmt.Errorf("failed to publish batch: %w", err)
			}
			select {
			case <-time.After(50 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if len(evaluations) == 0 {
		// Still clear stale results from a previous run.
		return r.queue.Push(models.EvaluationBatch{RunID: runID, Replace: true})
	}
	return nil
}
