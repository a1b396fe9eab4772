package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealscope/server/internal/models"
)

func TestCompare_RanksByScoreDescending(t *testing.T) {
	results := []models.StrategyResult{
		{DealID: "deal-1", Strategy: models.StrategyFlip, Score: 62, Verdict: models.StrategyConsider},
		{DealID: "deal-1", Strategy: models.StrategySTR, Score: 71, Verdict: models.StrategyBuy},
		{DealID: "deal-1", Strategy: models.StrategyMTR, Score: 55, Verdict: models.StrategyConsider},
		{DealID: "deal-1", Strategy: models.StrategyLTR, Score: 80, Verdict: models.StrategyBuy},
		{DealID: "deal-1", Strategy: models.StrategyCreative, Score: 25, Verdict: models.StrategyAvoid},
	}

	cmp := Compare("deal-1", results)

	assert.Equal(t, models.StrategyLTR, cmp.Ranked[0].Strategy)
	assert.Equal(t, models.StrategySTR, cmp.Ranked[1].Strategy)
	assert.Equal(t, models.StrategyCreative, cmp.Ranked[4].Strategy)

	assert.NotNil(t, cmp.Best)
	assert.Equal(t, models.StrategyLTR, cmp.Best.Strategy)
	assert.Contains(t, cmp.Rationale, "ltr leads at 80")
	assert.Equal(t, "ltr:80 str:71 flip:62 mtr:55 creative:25", cmp.Summary)
}

func TestCompare_TiesKeepDeclarationOrder(t *testing.T) {
	results := []models.StrategyResult{
		{Strategy: models.StrategyFlip, Score: 70},
		{Strategy: models.StrategySTR, Score: 70},
		{Strategy: models.StrategyMTR, Score: 70},
		{Strategy: models.StrategyLTR, Score: 70},
		{Strategy: models.StrategyCreative, Score: 70},
	}

	cmp := Compare("deal-1", results)

	// A full tie preserves the input order, flip first.
	assert.Equal(t, models.StrategyFlip, cmp.Ranked[0].Strategy)
	assert.Equal(t, models.StrategyCreative, cmp.Ranked[4].Strategy)
	assert.Equal(t, models.StrategyFlip, cmp.Best.Strategy)
}

func TestCompare_DoesNotMutateInput(t *testing.T) {
	results := []models.StrategyResult{
		{Strategy: models.StrategyFlip, Score: 10},
		{Strategy: models.StrategySTR, Score: 90},
	}

	_ = Compare("deal-1", results)

	assert.Equal(t, models.StrategyFlip, results[0].Strategy)
}

func TestCompare_Empty(t *testing.T) {
	cmp := Compare("deal-1", nil)

	assert.Nil(t, cmp.Best)
	assert.Equal(t, "no strategy results to compare", cmp.Rationale)
}
