package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"dealscope/server/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestLoadScoringConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := LoadScoringConfig("/nonexistent/scoring.json", testLogger())

	assert.NotNil(t, cfg)
	assert.Equal(t, 0.70, cfg.Flip.MAORulePct)
	assert.Equal(t, 80.0, cfg.Verdict.HotThreshold)
}

func TestLoadScoringConfig_PartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.json")
	overlay := `{"flip": {"mao_rule_pct": 0.65}, "matching": {"min_score": 60}}`
	assert.NoError(t, os.WriteFile(path, []byte(overlay), 0644))

	cfg := LoadScoringConfig(path, testLogger())

	// Named fields are overridden.
	assert.Equal(t, 0.65, cfg.Flip.MAORulePct)
	assert.Equal(t, 60.0, cfg.Matching.MinScore)
	// Everything else keeps its compiled default.
	assert.Equal(t, 0.06, cfg.Flip.AgentFeePct)
	assert.Equal(t, 10, cfg.Matching.MaxMatches)
	assert.Equal(t, 80.0, cfg.Verdict.HotThreshold)
}

func TestLoadScoringConfig_MalformedFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg := LoadScoringConfig(path, testLogger())

	assert.Equal(t, 0.70, cfg.Flip.MAORulePct)
}

func TestGetScoringConfig_ReturnsLoaded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"flip": {"mao_rule_pct": 0.62}}`), 0644))

	LoadScoringConfig(path, testLogger())
	cfg := GetScoringConfig()

	assert.Equal(t, 0.62, cfg.Flip.MAORulePct)

	// Restore defaults for other tests.
	LoadScoringConfig("/nonexistent/scoring.json", testLogger())
}

func TestSaveScoringConfig_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.json")

	assert.NoError(t, SaveScoringConfig(path))

	cfg := LoadScoringConfig(path, testLogger())
	assert.Equal(t, DefaultScoringConfig().Flip.MAORulePct, cfg.Flip.MAORulePct)

	LoadScoringConfig("/nonexistent/scoring.json", testLogger())
}

func TestPointsFor(t *testing.T) {
	tiers := []ScoreTier{
		{Min: 50000, Points: 30},
		{Min: 20000, Points: 20},
		{Min: 0, Points: 0},
	}

	assert.Equal(t, 30.0, PointsFor(60000, tiers, -20))
	assert.Equal(t, 30.0, PointsFor(50000, tiers, -20))
	assert.Equal(t, 20.0, PointsFor(49999, tiers, -20))
	assert.Equal(t, 0.0, PointsFor(100, tiers, -20))
	// Below every tier the fallback applies.
	assert.Equal(t, -20.0, PointsFor(-5000, tiers, -20))
}

func TestDefaultScoringConfig_CoversEveryTier(t *testing.T) {
	cfg := DefaultScoringConfig()

	tiers := []models.RepairTier{
		models.RepairCosmetic,
		models.RepairModerate,
		models.RepairHeavy,
		models.RepairFullGut,
		models.RepairTeardown,
	}
	for _, tier := range tiers {
		assert.Contains(t, cfg.Repair.CostPerSqft, tier)
		assert.Contains(t, cfg.Repair.TierFactor, tier)
		assert.Contains(t, cfg.Repair.BaseRisk, tier)
	}

	for _, exit := range []models.ExitRiskTier{
		models.ExitRiskLow, models.ExitRiskModerate, models.ExitRiskHigh, models.ExitRiskCritical,
	} {
		assert.Contains(t, cfg.Market.MAOMultiplier, exit)
		assert.Contains(t, cfg.Verdict.ExitRiskAdj, exit)
	}

	// Factor weights sum to 1 so a perfect buyer can reach 100.
	w := cfg.Matching.Weights
	assert.InDelta(t, 1.0, w.Zip+w.Strategy+w.Price+w.ExitSpeed+w.History+w.Reliability, 0.0001)
}
