// Package verdict folds every upstream signal into a composite deal score and
// risk score, applies the ordered override rules, and assigns the top-level
// verdict, next action and global rank.
package verdict

import (
	"sort"
	"strings"
	"time"

	"dealscope/server/config"
	"dealscope/server/internal/models"
	"dealscope/server/internal/strategy"
)

// Assess computes the verdict record for one deal. Rank is left zero; it is
// assigned globally by Rank once every deal has been assessed.
func Assess(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cmp *strategy.Comparison, cfg *config.ScoringConfig) models.VerdictRecord {
	vc := &cfg.Verdict

	dealScore := computeDealScore(deal, repair, market, cmp, vc)
	riskScore := computeRiskScore(deal, repair, market, vc)

	adjusted := dealScore - vc.RiskWeight*riskScore
	base := verdictForScore(adjusted, vc)

	final, reason := applyOverrides(deal, riskScore, base, vc)

	record := models.VerdictRecord{
		DealID:          deal.ID,
		DealScore:       dealScore,
		RiskScore:       riskScore,
		Verdict:         final,
		OverrideReason:  reason,
		NextAction:      nextAction(final, deal.SLAStatus),
		StrategySummary: cmp.Summary,
	}
	if cmp.Best != nil {
		record.BestStrategy = cmp.Best.Strategy
	}
	return record
}

// Rank sorts records by deal score descending and assigns 1-based ranks.
// The sort is stable, so equal scores keep their input order.
func Rank(records []models.VerdictRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DealScore > records[j].DealScore
	})
	for i := range records {
		records[i].Rank = i + 1
	}
}

func computeDealScore(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cmp *strategy.Comparison, vc *config.VerdictConfig) float64 {
	score := vc.BaseDealScore

	score += profitContribution(cmp, vc)
	score += marketContribution(market, vc)
	score += motivationContribution(deal.MotivationText, vc)
	score += qualityContribution(deal, repair, vc)
	score += slaContribution(deal.SLAStatus, vc)
	score += market.VerdictBoost
	if cmp.Best != nil {
		score += vc.BestStrategyBonus
	}

	return clamp(score)
}

// profitContribution buckets the flip profit margin. Deals whose comparison
// carries no flip model contribute the neutral zero.
func profitContribution(cmp *strategy.Comparison, vc *config.VerdictConfig) float64 {
	for _, r := range cmp.Ranked {
		if r.Strategy == models.StrategyFlip && r.Flip != nil {
			return config.PointsFor(r.Flip.ProfitMargin, vc.MarginTiers, vc.NegativeMarginPenalty)
		}
	}
	return 0
}

func marketContribution(market *models.MarketSignal, vc *config.VerdictConfig) float64 {
	var c float64
	switch market.VelocityTier {
	case models.VelocityFast:
		c += 10
	case models.VelocityModerate:
		c += 5
	case models.VelocitySlow:
		c -= 5
	case models.VelocityStale:
		c -= 10
	}
	if market.HeatScore >= 70 {
		c += 5
	} else if market.HeatScore <= 30 {
		c -= 5
	}
	return clampRange(c, -vc.MarketContributionCap, vc.MarketContributionCap)
}

func motivationContribution(text string, vc *config.VerdictConfig) float64 {
	lowered := strings.ToLower(text)

	// Sum keywords in sorted order so the float total is reproducible.
	keywords := make([]string, 0, len(vc.MotivationKeywords))
	for k := range vc.MotivationKeywords {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	var c float64
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			c += vc.MotivationKeywords[keyword]
		}
	}
	return clampRange(c, vc.MotivationMin, vc.MotivationMax)
}

// qualityTypeAdj is the property-type leg of the quality contribution.
var qualityTypeAdj = map[models.PropertyType]float64{
	models.PropertySingleFamily: 4,
	models.PropertyTownhouse:    2,
	models.PropertyMultiFamily:  2,
	models.PropertyCondo:        0,
	models.PropertyLand:         -3,
	models.PropertyMobileHome:   -5,
}

func qualityContribution(deal *models.Deal, repair *models.RepairAssessment, vc *config.VerdictConfig) float64 {
	c := qualityTypeAdj[deal.PropertyType]

	age := deal.Age(time.Now())
	switch {
	case age < 20:
		c += 4
	case age < 45:
		c += 2
	case age >= 80:
		c -= 2
	}

	switch repair.Tier {
	case models.RepairCosmetic:
		c += 2
	case models.RepairHeavy:
		c -= 2
	case models.RepairFullGut, models.RepairTeardown:
		c -= 5
	}

	return clampRange(c, vc.QualityMin, vc.QualityMax)
}

func slaContribution(status models.SLAStatus, vc *config.VerdictConfig) float64 {
	switch status {
	case models.SLAOnTime:
		return vc.SLAOnTimeBonus
	case models.SLASlow:
		return -vc.SLASlowPenalty
	case models.SLABreach:
		return -vc.SLABreachPenalty
	default:
		return 0
	}
}

func computeRiskScore(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, vc *config.VerdictConfig) float64 {
	risk := vc.BaseRiskScore

	risk += vc.ExitRiskAdj[market.ExitRiskTier]
	risk += repair.RiskScore * vc.RepairRiskWeight
	risk += vc.SaturationRiskAdj[market.SaturationTier]
	risk += vc.TypeRiskAdj[deal.PropertyType]

	switch {
	case deal.AskingPrice >= 500000:
		risk += 8
	case deal.AskingPrice >= 300000:
		risk += 4
	case deal.AskingPrice > 0 && deal.AskingPrice < 75000:
		risk += 6
	}

	if adj, ok := vc.ConfidenceRiskAdj[deal.CompConfidence]; ok {
		risk += adj
	} else {
		risk += vc.ConfidenceRiskAdj[models.CompConfidenceMedium]
	}

	switch {
	case deal.DaysOnMarket >= 120:
		risk += 8
	case deal.DaysOnMarket >= 90:
		risk += 5
	case deal.DaysOnMarket > 0 && deal.DaysOnMarket <= 14:
		risk -= 3
	}

	return clamp(risk)
}

// overrideRule downgrades or forces a verdict. Rules run in order and the
// last applicable rule wins, so later rules take precedence.
type overrideRule struct {
	reason  string
	applies func(deal *models.Deal, riskScore float64, base models.Verdict, vc *config.VerdictConfig) bool
	score   func(vc *config.VerdictConfig) float64
}

var overrideRules = []overrideRule{
	{
		reason: "High risk override",
		applies: func(d *models.Deal, risk float64, base models.Verdict, vc *config.VerdictConfig) bool {
			return risk >= vc.HighRiskThreshold && base == models.VerdictHot
		},
		score: func(vc *config.VerdictConfig) float64 { return vc.HighRiskScore },
	},
	{
		reason: "SLA breach penalty",
		applies: func(d *models.Deal, risk float64, base models.Verdict, vc *config.VerdictConfig) bool {
			return d.SLAStatus == models.SLABreach && base == models.VerdictHot
		},
		score: func(vc *config.VerdictConfig) float64 { return vc.SLABreachScore },
	},
	{
		// ARV at or below asking means no equity to work with. The check
		// requires a known ARV; a missing ARV stays fail-soft.
		reason: "No equity",
		applies: func(d *models.Deal, risk float64, base models.Verdict, vc *config.VerdictConfig) bool {
			return d.ARV > 0 && d.ARV <= d.AskingPrice
		},
		score: func(vc *config.VerdictConfig) float64 { return vc.NoEquityScore },
	},
}

func applyOverrides(deal *models.Deal, riskScore float64, base models.Verdict, vc *config.VerdictConfig) (models.Verdict, string) {
	final := base
	reason := ""
	for _, rule := range overrideRules {
		if rule.applies(deal, riskScore, base, vc) {
			final = verdictForScore(rule.score(vc), vc)
			reason = rule.reason
		}
	}
	return final, reason
}

func verdictForScore(score float64, vc *config.VerdictConfig) models.Verdict {
	switch {
	case score >= vc.HotThreshold:
		return models.VerdictHot
	case score >= vc.SolidThreshold:
		return models.VerdictSolid
	case score >= vc.HoldThreshold:
		return models.VerdictHold
	default:
		return models.VerdictPass
	}
}

func nextAction(verdict models.Verdict, sla models.SLAStatus) models.NextAction {
	urgent := sla == models.SLABreach || sla == models.SLASlow
	switch verdict {
	case models.VerdictHot:
		if urgent {
			return models.ActionCallNowSLA
		}
		return models.ActionCallNow
	case models.VerdictSolid:
		if urgent {
			return models.ActionPriorityFollow
		}
		return models.ActionFollowUpToday
	case models.VerdictHold:
		return models.ActionNurture
	default:
		return models.ActionArchive
	}
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

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
