package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

func TestMTREngine_FurnishedEconomics(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := &models.Deal{
		ID:                  "deal-1",
		AskingPrice:         200000,
		MonthlyRentEstimate: 2000,
	}
	repair := &models.RepairAssessment{CostMid: 10000}

	result := MTREngine{}.Evaluate(deal, repair, &models.MarketSignal{}, cfg)

	proj := result.Rental
	assert.NotNil(t, proj)

	// Furnished rent carries the 35% premium.
	assert.InDelta(t, 2700, proj.MonthlyGross, 0.01)
	// 12 / (3-month stay + 0.5-month gap).
	assert.InDelta(t, 12.0/3.5, proj.TurnsPerYear, 0.001)

	// 2700 - 250 utilities - 10000/36 furniture - 2700*0.10 management.
	wantNet := 2700.0 - 250 - 10000.0/36 - 270
	assert.InDelta(t, wantNet, proj.MonthlyNet, 0.01)

	// Unfurnished 12-month baseline the premium has to beat.
	assert.InDelta(t, 2000*(1-0.08-0.08), proj.LTREquivalent, 0.01)
	assert.Greater(t, proj.MonthlyNet, proj.LTREquivalent)
}

func TestMTREngine_NegativeNetForcesAvoid(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := &models.Deal{
		ID:                  "deal-1",
		AskingPrice:         200000,
		MonthlyRentEstimate: 400,
	}
	repair := &models.RepairAssessment{CostMid: 10000}

	result := MTREngine{}.Evaluate(deal, repair, &models.MarketSignal{}, cfg)

	// 540 furnished - 250 - 277.78 - 54 is under water.
	assert.Less(t, result.Rental.MonthlyNet, 0.0)
	assert.Equal(t, models.StrategyAvoid, result.Verdict)
}
