package repair

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// yearForAge returns a year built that yields the given property age today.
func yearForAge(age int) int {
	return time.Now().Year() - age
}

func testDeal(age int) *models.Deal {
	return &models.Deal{
		ID:           "deal-1",
		Sqft:         2000,
		YearBuilt:    yearForAge(age),
		DaysOnMarket: 30,
		PropertyType: models.PropertySingleFamily,
	}
}

func TestClassifyTier_KeywordPriority(t *testing.T) {
	cfg := &config.DefaultScoringConfig().Repair

	// A heavier keyword outranks a lighter one in the same text.
	tier := classifyTier("full gut needed but could be cosmetic", 10, cfg)
	assert.Equal(t, models.RepairFullGut, tier)

	tier = classifyTier("fire damage, mold throughout", 10, cfg)
	assert.Equal(t, models.RepairTeardown, tier)

	tier = classifyTier("PAINT AND CARPET only", 50, cfg)
	assert.Equal(t, models.RepairCosmetic, tier)
}

func TestClassifyTier_AgeFallback(t *testing.T) {
	cfg := &config.DefaultScoringConfig().Repair

	cases := []struct {
		age  int
		want models.RepairTier
	}{
		{10, models.RepairCosmetic},
		{25, models.RepairCosmetic},
		{30, models.RepairModerate},
		{40, models.RepairModerate},
		{50, models.RepairHeavy},
		{60, models.RepairHeavy},
		{70, models.RepairFullGut},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classifyTier("", c.age, cfg), "age %d", c.age)
	}
}

func TestEstimate_CostRange(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := testDeal(10)
	deal.MotivationText = "cosmetic refresh"

	assessment := Estimate(deal, cfg)

	assert.Equal(t, models.RepairCosmetic, assessment.Tier)
	assert.Equal(t, 2000*5.0, assessment.CostLow)
	assert.Equal(t, 2000*15.0, assessment.CostHigh)
	assert.Equal(t, 2000*10.0, assessment.CostMid)
}

func TestEstimate_DefaultSqft(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := testDeal(10)
	deal.Sqft = 0
	deal.MotivationText = "cosmetic"

	assessment := Estimate(deal, cfg)

	assert.Equal(t, models.DefaultSqft*5.0, assessment.CostLow)
}

func TestEstimate_BreakdownContingency(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := testDeal(70)
	deal.MotivationText = "full gut"

	assessment := Estimate(deal, cfg)

	var subtotal float64
	for category, cost := range assessment.Breakdown {
		if category == models.CategoryContingency {
			continue
		}
		subtotal += cost
	}
	assert.InDelta(t, subtotal*0.10, assessment.Breakdown[models.CategoryContingency], 0.001)

	// Full gut at age 70 touches everything.
	assert.Contains(t, assessment.Breakdown, models.CategoryFoundation)
	assert.Contains(t, assessment.Breakdown, models.CategoryElectrical)
}

func TestCategoryApplies_Gates(t *testing.T) {
	// Cosmetic rehab on a young house excludes the systems categories.
	assert.False(t, categoryApplies(models.CategoryRoof, models.RepairCosmetic, 10))
	assert.False(t, categoryApplies(models.CategoryFoundation, models.RepairHeavy, 80))
	assert.True(t, categoryApplies(models.CategoryRoof, models.RepairCosmetic, 25))
	assert.True(t, categoryApplies(models.CategoryFoundation, models.RepairFullGut, 5))
	assert.True(t, categoryApplies(models.CategoryKitchen, models.RepairModerate, 5))
	assert.False(t, categoryApplies(models.CategoryKitchen, models.RepairCosmetic, 5))
	assert.True(t, categoryApplies(models.CategoryPaint, models.RepairCosmetic, 1))
}

func TestRiskScore_Clamped(t *testing.T) {
	cfg := &config.DefaultScoringConfig().Repair

	// Teardown on an old mobile home pushes past 100 and clamps.
	risk := riskScore(models.RepairTeardown, 80, models.PropertyMobileHome, cfg)
	assert.Equal(t, 100.0, risk)

	// Cosmetic on a new condo pushes below 0 and clamps.
	risk = riskScore(models.RepairCosmetic, 5, models.PropertyCondo, cfg)
	assert.Equal(t, 0.0, risk)

	// Moderate on a mid-age single family stays at base.
	risk = riskScore(models.RepairModerate, 30, models.PropertySingleFamily, cfg)
	assert.Equal(t, 30.0, risk)
}

func TestEstimate_Deterministic(t *testing.T) {
	cfg := config.DefaultScoringConfig()
	deal := testDeal(45)
	deal.MotivationText = "needs everything, roof leak"

	first := Estimate(deal, cfg)
	second := Estimate(deal, cfg)

	assert.Equal(t, first, second)
}
