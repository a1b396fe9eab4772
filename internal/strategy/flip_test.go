package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

func flipDeal() *models.Deal {
	return &models.Deal{
		ID:           "deal-1",
		AskingPrice:  180000,
		ARV:          300000,
		DaysOnMarket: 20,
		PropertyType: models.PropertySingleFamily,
	}
}

func TestFlipEngine_WorkedExample(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := flipDeal()
	repair := &models.RepairAssessment{CostMid: 30000}
	market := &models.MarketSignal{ExitRiskScore: 45, MAOMultiplier: 0.95}

	result := FlipEngine{}.Evaluate(deal, repair, market, cfg)

	proj := result.Flip
	assert.NotNil(t, proj)

	// 20 DOM lands in the 4-month holding band.
	assert.Equal(t, 4.0, proj.HoldingMonths)
	assert.InDelta(t, 7200, proj.HoldingCost, 0.01)
	assert.InDelta(t, 18000, proj.AgentFees, 0.01)
	assert.InDelta(t, 5400, proj.ClosingCosts, 0.01)

	// 300000 - 180000 - 30000 - 7200 - 18000 - 5400.
	assert.InDelta(t, 59400, proj.Profit, 0.01)
	assert.InDelta(t, 0.198, proj.ProfitMargin, 0.001)
	assert.InDelta(t, 59400.0/222600.0, proj.ROI, 0.001)

	// 300000 * 0.70 * 0.95 - 30000.
	assert.InDelta(t, 169500, proj.MaxOffer, 0.01)

	// 50 + 30 profit + 15 ROI - 45/5.
	assert.Equal(t, 86.0, result.Score)
	assert.Equal(t, models.StrategyStrongBuy, result.Verdict)
}

func TestFlipEngine_NegativeProfitForcesAvoid(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := flipDeal()
	deal.ARV = 150000

	result := FlipEngine{}.Evaluate(deal, &models.RepairAssessment{CostMid: 30000}, &models.MarketSignal{MAOMultiplier: 1.0}, cfg)

	assert.Less(t, result.Flip.Profit, 0.0)
	assert.Equal(t, models.StrategyAvoid, result.Verdict)
}

func TestFlipEngine_ScoreMonotonicInARV(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	repair := &models.RepairAssessment{CostMid: 30000}
	market := &models.MarketSignal{ExitRiskScore: 45, MAOMultiplier: 0.95}

	low := flipDeal()
	low.ARV = 260000
	high := flipDeal()
	high.ARV = 320000

	lowResult := FlipEngine{}.Evaluate(low, repair, market, cfg)
	highResult := FlipEngine{}.Evaluate(high, repair, market, cfg)

	assert.GreaterOrEqual(t, highResult.Score, lowResult.Score)
	assert.Greater(t, highResult.Flip.Profit, lowResult.Flip.Profit)
}

func TestHoldingMonths_Bands(t *testing.T) {
	fc := &config.DefaultScoringConfig().Flip

	assert.Equal(t, 3.0, holdingMonths(10, fc))
	assert.Equal(t, 4.0, holdingMonths(45, fc))
	assert.Equal(t, 6.0, holdingMonths(60, fc))
	assert.Equal(t, 8.0, holdingMonths(120, fc))
	// Zero DOM falls back to the neutral default of 30 days.
	assert.Equal(t, 4.0, holdingMonths(0, fc))
}
