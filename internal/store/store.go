// Package store persists deals, buyers and pipeline results in sqlite. The
// scoring core only relies on the write-and-read-back contract keyed by deal
// id and buyer id; everything else here is plumbing.
package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dealscope/server/internal/models"
)

type Store struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewStore(dbPath string, logger *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Sqlite needs foreign keys switched on per connection.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// RunMigrations creates or updates every table the pipeline reads or writes.
func (s *Store) RunMigrations() error {
	err := s.db.AutoMigrate(
		&models.Deal{},
		&models.Buyer{},
		&models.RepairAssessment{},
		&models.MarketSignal{},
		&models.StrategyResult{},
		&models.VerdictRecord{},
		&models.MatchResult{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// UpsertDeals writes a batch of normalized deals. Last write wins per record,
// which is the only consistency guarantee the ingestion side gets.
func (s *Store) UpsertDeals(ctx context.Context, deals []models.Deal) error {
	if len(deals) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range deals {
			if err := tx.Save(&deals[i]).Error; err != nil {
				return fmt.Errorf("failed to upsert deal %s: %w", deals[i].ID, err)
			}
		}
		return nil
	})
}

// UpsertBuyers writes a batch of buyers from the buyer database.
func (s *Store) UpsertBuyers(ctx context.Context, buyers []models.Buyer) error {
	if len(buyers) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range buyers {
			if err := tx.Save(&buyers[i]).Error; err != nil {
				return fmt.Errorf("failed to upsert buyer %s: %w", buyers[i].ID, err)
			}
		}
		return nil
	})
}

// ListDeals returns every deal known to the system, in insertion order.
func (s *Store) ListDeals(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, nil
}

// ListActiveBuyers returns the buyers eligible for matching.
func (s *Store) ListActiveBuyers(ctx context.Context) ([]models.Buyer, error) {
	var buyers []models.Buyer
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("created_at, id").Find(&buyers).Error; err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}
	return buyers, nil
}

// ReplaceRunResults applies one evaluation batch inside a transaction. The
// first batch of a run (Replace set) clears the previous run's results, since
// results are recomputed wholesale and never patched.
func (s *Store) ReplaceRunResults(ctx context.Context, batch models.EvaluationBatch) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if batch.Replace {
			for _, model := range []interface{}{
				&models.RepairAssessment{},
				&models.MarketSignal{},
				&models.StrategyResult{},
				&models.VerdictRecord{},
				&models.MatchResult{},
			} {
				if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
					return fmt.Errorf("failed to clear previous results: %w", err)
				}
			}
		}

		for i := range batch.Evaluations {
			ev := &batch.Evaluations[i]
			if err := tx.Create(&ev.Repair).Error; err != nil {
				return fmt.Errorf("failed to write repair assessment for %s: %w", ev.Deal.ID, err)
			}
			if err := tx.Create(&ev.Market).Error; err != nil {
				return fmt.Errorf("failed to write market signal for %s: %w", ev.Deal.ID, err)
			}
			for j := range ev.Strategies {
				if err := tx.Create(&ev.Strategies[j]).Error; err != nil {
					return fmt.Errorf("failed to write strategy result for %s: %w", ev.Deal.ID, err)
				}
			}
			if err := tx.Create(&ev.Verdict).Error; err != nil {
				return fmt.Errorf("failed to write verdict for %s: %w", ev.Deal.ID, err)
			}
			for j := range ev.Matches {
				if err := tx.Create(&ev.Matches[j]).Error; err != nil {
					return fmt.Errorf("failed to write match for %s: %w", ev.Deal.ID, err)
				}
			}
		}
		return nil
	})
}

// GetEvaluation reads back the full evaluation for one deal.
func (s *Store) GetEvaluation(ctx context.Context, dealID string) (*models.DealEvaluation, error) {
	db := s.db.WithContext(ctx)

	var ev models.DealEvaluation
	if err := db.First(&ev.Deal, "id = ?", dealID).Error; err != nil {
		return nil, fmt.Errorf("failed to load deal %s: %w", dealID, err)
	}
	if err := db.First(&ev.Repair, "deal_id = ?", dealID).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load repair assessment: %w", err)
	}
	if err := db.First(&ev.Market, "deal_id = ?", dealID).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load market signal: %w", err)
	}
	if err := db.Where("deal_id = ?", dealID).Find(&ev.Strategies).Error; err != nil {
		return nil, fmt.Errorf("failed to load strategy results: %w", err)
	}
	if err := db.First(&ev.Verdict, "deal_id = ?", dealID).Error; err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load verdict: %w", err)
	}
	if err := db.Where("deal_id = ?", dealID).Order("total_score desc").Find(&ev.Matches).Error; err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	return &ev, nil
}

// ListVerdicts returns all verdict records ordered by rank.
func (s *Store) ListVerdicts(ctx context.Context) ([]models.VerdictRecord, error) {
	var verdicts []models.VerdictRecord
	if err := s.db.WithContext(ctx).Order("rank").Find(&verdicts).Error; err != nil {
		return nil, fmt.Errorf("failed to list verdicts: %w", err)
	}
	return verdicts, nil
}

// ListMatches returns the stored matches for one deal, best first.
func (s *Store) ListMatches(ctx context.Context, dealID string) ([]models.MatchResult, error) {
	var matches []models.MatchResult
	if err := s.db.WithContext(ctx).Where("deal_id = ?", dealID).Order("total_score desc").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
