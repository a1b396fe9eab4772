package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

func strDeal(state string) *models.Deal {
	return &models.Deal{
		ID:           "deal-1",
		State:        state,
		AskingPrice:  200000,
		Beds:         3,
		PropertyType: models.PropertySingleFamily,
	}
}

func TestSTREngine_ADRComposition(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := strDeal("FL")
	repair := &models.RepairAssessment{CostMid: 10000}

	result := STREngine{}.Evaluate(deal, repair, &models.MarketSignal{}, cfg)

	proj := result.Rental
	assert.NotNil(t, proj)
	// 120 base * 1.2 (3 beds) * 1.25 (FL) * 1.0 (single family).
	assert.InDelta(t, 180.0, proj.ADR, 0.001)
	assert.Equal(t, 0.65, proj.Occupancy)
	assert.InDelta(t, 180.0*30.4*0.65, proj.MonthlyGross, 0.01)
	// 19.76 occupied nights / 3-night stays, annualized.
	assert.InDelta(t, 19.76/3*12, proj.TurnsPerYear, 0.01)
	assert.Greater(t, proj.MonthlyNet, 0.0)
}

func TestSTREngine_RegulationPenalty(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	repair := &models.RepairAssessment{CostMid: 10000}
	market := &models.MarketSignal{}

	// Same physical asset; only the regulatory climate changes. TX carries no
	// STR penalty, NY carries the heavy one.
	open := STREngine{}.Evaluate(strDeal("TX"), repair, market, cfg)
	restricted := STREngine{}.Evaluate(strDeal("NY"), repair, market, cfg)

	assert.Greater(t, open.Score, restricted.Score)
}

func TestSTREngine_SeasonalityBonus(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	repair := &models.RepairAssessment{CostMid: 10000}
	market := &models.MarketSignal{}

	// TN is hot-seasonal with no regulation penalty; PA is neither.
	seasonal := STREngine{}.Evaluate(strDeal("TN"), repair, market, cfg)
	flat := STREngine{}.Evaluate(strDeal("PA"), repair, market, cfg)

	assert.Greater(t, seasonal.Score, flat.Score)
}

func TestBedFactor_CapsAboveTable(t *testing.T) {
	sc := &config.DefaultScoringConfig().STR

	assert.Equal(t, 0.7, bedFactor(0, sc))
	assert.Equal(t, 1.2, bedFactor(3, sc))
	assert.Equal(t, 1.55, bedFactor(6, sc))
}

func TestRegulationPenalty(t *testing.T) {
	sc := &config.DefaultScoringConfig().STR

	assert.Equal(t, 25.0, regulationPenalty("NY", sc))
	assert.Equal(t, 10.0, regulationPenalty("CO", sc))
	assert.Equal(t, 0.0, regulationPenalty("TX", sc))
}
