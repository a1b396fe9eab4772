package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	scoringConfig *ScoringConfig
	scoringLock   sync.RWMutex
)

// LoadScoringConfig loads the scoring-constant table, overlaying the JSON
// file at path on top of the compiled defaults. A missing or unreadable file
// is not an error: the defaults are used and a warning is logged, per the
// fail-soft contract for configuration lookups.
func LoadScoringConfig(path string, logger *logrus.Logger) *ScoringConfig {
	scoringLock.Lock()
	defer scoringLock.Unlock()

	cfg := DefaultScoringConfig()

	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.WithError(err).Warn("Could not resolve scoring config path, using defaults")
		scoringConfig = cfg
		return cfg
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).WithField("path", absPath).
			Warn("Scoring config file not readable, using compiled defaults")
		scoringConfig = cfg
		return cfg
	}

	// Unmarshal over the defaults so a partial file overrides only the
	// fields it names.
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.WithError(err).WithField("path", absPath).
			Warn("Scoring config file malformed, using compiled defaults")
		cfg = DefaultScoringConfig()
		scoringConfig = cfg
		return cfg
	}

	logger.WithField("path", absPath).Info("Loaded scoring config overlay")
	scoringConfig = cfg
	return cfg
}

// GetScoringConfig returns the currently loaded scoring table, falling back
// to the compiled defaults when nothing was loaded yet.
func GetScoringConfig() *ScoringConfig {
	scoringLock.RLock()
	defer scoringLock.RUnlock()

	if scoringConfig == nil {
		return DefaultScoringConfig()
	}
	return scoringConfig
}

// SaveScoringConfig writes the current scoring table to path, pretty
// printed, so operators can start an overlay from the live values.
func SaveScoringConfig(path string) error {
	scoringLock.RLock()
	cfg := scoringConfig
	scoringLock.RUnlock()

	if cfg == nil {
		cfg = DefaultScoringConfig()
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal scoring config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scoring config: %v", err)
	}

	return nil
}
