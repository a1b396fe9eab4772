package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

func creativeDeal() *models.Deal {
	return &models.Deal{
		ID:                  "deal-1",
		AskingPrice:         180000,
		ARV:                 200000,
		MortgageBalance:     140000,
		MonthlyRentEstimate: 2000,
	}
}

func structureByName(proj *models.CreativeProjection, name models.CreativeStructure) models.StructureEvaluation {
	for _, s := range proj.Structures {
		if s.Structure == name {
			return s
		}
	}
	return models.StructureEvaluation{}
}

func TestEquityFraction(t *testing.T) {
	assert.InDelta(t, 0.30, equityFraction(creativeDeal()), 0.001)

	free := creativeDeal()
	free.MortgageBalance = 0
	assert.Equal(t, 1.0, equityFraction(free))

	underwater := creativeDeal()
	underwater.MortgageBalance = 250000
	assert.Equal(t, 0.0, equityFraction(underwater))

	noARV := creativeDeal()
	noARV.ARV = 0
	assert.Equal(t, 0.0, equityFraction(noARV))
}

func TestCreativeEngine_HybridBeatsBothLegs(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := creativeDeal()

	result := CreativeEngine{}.Evaluate(deal, &models.RepairAssessment{}, &models.MarketSignal{}, cfg)

	proj := result.Creative
	assert.NotNil(t, proj)

	sub2 := structureByName(proj, models.CreativeSubjectTo)
	wrap := structureByName(proj, models.CreativeWrap)
	hybrid := structureByName(proj, models.CreativeHybrid)

	// 30% equity sits inside the subject-to window and leaves enough
	// underlying balance to wrap.
	assert.True(t, sub2.Viable)
	assert.True(t, wrap.Viable)

	// Hybrid averages the legs and adds its bonus, so it outranks both.
	assert.True(t, hybrid.Viable)
	assert.Greater(t, hybrid.Score, sub2.Score)
	assert.Greater(t, hybrid.Score, wrap.Score)
	assert.Equal(t, models.CreativeHybrid, proj.Best)
	assert.Equal(t, clamp(hybrid.Score), result.Score)
}

func TestCreativeEngine_FreeAndClearFavorsCarry(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := creativeDeal()
	deal.MortgageBalance = 0

	result := CreativeEngine{}.Evaluate(deal, &models.RepairAssessment{}, &models.MarketSignal{}, cfg)

	proj := result.Creative
	sub2 := structureByName(proj, models.CreativeSubjectTo)
	wrap := structureByName(proj, models.CreativeWrap)
	carry := structureByName(proj, models.CreativeSellerCarry)
	lease := structureByName(proj, models.CreativeLeaseOption)

	// Nothing to take over or wrap without a mortgage.
	assert.False(t, sub2.Viable)
	assert.NotEmpty(t, sub2.Reason)
	assert.False(t, wrap.Viable)

	assert.True(t, carry.Viable)
	assert.True(t, lease.Viable)
	// Carry and lease-option pair into the second recognized hybrid.
	assert.Equal(t, models.CreativeHybrid, proj.Best)
}

func TestCreativeEngine_Sub2EquityWindow(t *testing.T) {
	cfg := config.DefaultScoringConfig()

	// 55% equity overshoots the subject-to window.
	deal := creativeDeal()
	deal.MortgageBalance = 90000

	result := CreativeEngine{}.Evaluate(deal, &models.RepairAssessment{}, &models.MarketSignal{}, cfg)

	sub2 := structureByName(result.Creative, models.CreativeSubjectTo)
	assert.False(t, sub2.Viable)
	assert.Contains(t, sub2.Reason, "equity")
}

func TestCreativeEngine_NothingViable(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := &models.Deal{
		ID:                  "deal-1",
		AskingPrice:         180000,
		ARV:                 200000,
		MonthlyRentEstimate: 100,
	}

	result := CreativeEngine{}.Evaluate(deal, &models.RepairAssessment{}, &models.MarketSignal{}, cfg)

	for _, s := range result.Creative.Structures {
		assert.False(t, s.Viable, string(s.Structure))
	}
	assert.Equal(t, 25.0, result.Score)
	assert.Equal(t, models.StrategyAvoid, result.Verdict)
}
