// Package repair classifies rehab complexity and produces cost ranges plus a
// repair risk score for a deal. Estimates are a pure function of sqft, year
// built, property type and the lead's free-text signals.
package repair

import (
	"sort"
	"strings"
	"time"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// Keyword sets checked in priority order: a teardown phrase outranks a
// full-gut phrase, and so on down to cosmetic.
var tierKeywords = []struct {
	tier     models.RepairTier
	keywords []string
}{
	{models.RepairTeardown, []string{
		"teardown", "tear down", "condemned", "fire damage", "structural collapse", "demolish",
	}},
	{models.RepairFullGut, []string{
		"full gut", "gut rehab", "uninhabitable", "mold", "foundation issue", "down to the studs",
	}},
	{models.RepairHeavy, []string{
		"major repairs", "roof leak", "water damage", "handyman special", "needs everything", "outdated",
	}},
	{models.RepairCosmetic, []string{
		"cosmetic", "paint and carpet", "light rehab", "move-in ready", "minor updates", "clean",
	}},
}

// Estimate produces the repair assessment for a deal. The deal is read-only;
// absent numeric inputs are expected to have been defaulted by Normalize.
func Estimate(deal *models.Deal, cfg *config.ScoringConfig) models.RepairAssessment {
	age := deal.Age(time.Now())
	tier := classifyTier(deal.MotivationText, age, &cfg.Repair)

	sqft := float64(deal.Sqft)
	if sqft <= 0 {
		sqft = models.DefaultSqft
	}

	costs := cfg.Repair.CostPerSqft[tier]
	low := sqft * costs.Low
	high := sqft * costs.High

	breakdown := categoryBreakdown(tier, age, &cfg.Repair)

	return models.RepairAssessment{
		DealID:    deal.ID,
		Tier:      tier,
		CostLow:   low,
		CostHigh:  high,
		CostMid:   (low + high) / 2,
		Breakdown: breakdown,
		RiskScore: riskScore(tier, age, deal.PropertyType, &cfg.Repair),
	}
}

// classifyTier matches signal text against the ordered keyword sets and
// falls back to property age when nothing matches.
func classifyTier(text string, age int, cfg *config.RepairConfig) models.RepairTier {
	lowered := strings.ToLower(text)
	for _, set := range tierKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.tier
			}
		}
	}

	switch {
	case age <= cfg.AgeCosmeticMax:
		return models.RepairCosmetic
	case age <= cfg.AgeModerateMax:
		return models.RepairModerate
	case age <= cfg.AgeHeavyMax:
		return models.RepairHeavy
	default:
		return models.RepairFullGut
	}
}

// categoryApplies decides which cost categories apply. A category is included
// when the property is old enough or the rehab is heavy enough to touch it.
func categoryApplies(category string, tier models.RepairTier, age int) bool {
	order := tier.Order()
	switch category {
	case models.CategoryRoof:
		return age > 20 || order >= models.RepairHeavy.Order()
	case models.CategoryHVAC:
		return age > 15 || order >= models.RepairHeavy.Order()
	case models.CategoryPlumbing:
		return age > 40 || order >= models.RepairFullGut.Order()
	case models.CategoryElectrical:
		return age > 50 || order >= models.RepairFullGut.Order()
	case models.CategoryFoundation:
		return order >= models.RepairFullGut.Order()
	case models.CategoryKitchen, models.CategoryBaths:
		return order >= models.RepairModerate.Order()
	case models.CategoryOpenings:
		return age > 30 || order >= models.RepairFullGut.Order()
	case models.CategoryExterior:
		return order >= models.RepairHeavy.Order()
	default:
		// flooring, paint, landscaping always apply
		return true
	}
}

func categoryBreakdown(tier models.RepairTier, age int, cfg *config.RepairConfig) map[string]float64 {
	factor := cfg.TierFactor[tier]
	if factor == 0 {
		factor = cfg.TierFactor[models.RepairModerate]
	}

	// Iterate in sorted order so the subtotal sums identically on every run.
	categories := make([]string, 0, len(cfg.CategoryBase))
	for category := range cfg.CategoryBase {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	breakdown := make(map[string]float64, len(cfg.CategoryBase)+1)
	var subtotal float64
	for _, category := range categories {
		if !categoryApplies(category, tier, age) {
			continue
		}
		cost := cfg.CategoryBase[category] * factor
		breakdown[category] = cost
		subtotal += cost
	}
	breakdown[models.CategoryContingency] = subtotal * cfg.ContingencyPct
	return breakdown
}

func riskScore(tier models.RepairTier, age int, propertyType models.PropertyType, cfg *config.RepairConfig) float64 {
	risk, ok := cfg.BaseRisk[tier]
	if !ok {
		risk = cfg.BaseRisk[models.RepairModerate]
	}

	if age > cfg.AgeHeavyMax {
		risk += cfg.OldAgeRiskAdj
	} else if age < 15 {
		risk += cfg.NewAgeRiskAdj
	}

	risk += cfg.PropertyRiskAdj[propertyType]

	return clamp(risk)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
