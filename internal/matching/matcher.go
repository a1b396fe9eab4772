// Package matching scores capital-ready buyers against an evaluated deal on
// location, strategy, price and exit-speed fit, then ranks and explains the
// matches.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// neutralScore is the factor score used whenever either side of a
// comparison is missing, per the fail-soft contract.
const neutralScore = 5

// strategyCompat maps a deal's best strategy to buyer strategies considered
// compatible (scoring 7 instead of an exact 10).
var strategyCompat = map[models.Strategy][]models.BuyerStrategy{
	models.StrategyFlip:     {models.BuyerStrategyCreative},
	models.StrategySTR:      {models.BuyerStrategyMTR, models.BuyerStrategyLTR},
	models.StrategyMTR:      {models.BuyerStrategySTR, models.BuyerStrategyLTR},
	models.StrategyLTR:      {models.BuyerStrategyMTR, models.BuyerStrategySTR},
	models.StrategyCreative: {models.BuyerStrategyFlip},
}

// dealExitSpeed derives the deal's exit horizon from its best strategy.
func dealExitSpeed(best models.Strategy) models.ExitSpeed {
	switch best {
	case models.StrategyFlip:
		return models.ExitQuickFlip
	case models.StrategyCreative:
		return models.ExitMedium
	case models.StrategySTR, models.StrategyMTR, models.StrategyLTR:
		return models.ExitLongHold
	default:
		return ""
	}
}

// Match scores every active buyer against the deal. Buyers below the
// configured minimum are dropped; survivors are sorted by total score
// descending (stable, so equal scores keep buyer input order) and capped.
func Match(deal *models.Deal, verdict *models.VerdictRecord, buyers []models.Buyer, cfg *config.ScoringConfig) []models.MatchResult {
	mc := &cfg.Matching

	results := make([]models.MatchResult, 0, len(buyers))
	for _, buyer := range buyers {
		if !buyer.Active {
			continue
		}
		result := scoreBuyer(deal, verdict, &buyer, mc)
		if result.TotalScore >= mc.MinScore {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if mc.MaxMatches > 0 && len(results) > mc.MaxMatches {
		results = results[:mc.MaxMatches]
	}
	return results
}

func scoreBuyer(deal *models.Deal, verdict *models.VerdictRecord, buyer *models.Buyer, mc *config.MatchingConfig) models.MatchResult {
	var notes []string

	zip := zipScore(deal, buyer, &notes)
	strat := strategyScore(verdict.BestStrategy, buyer.PreferredStrategy, &notes)
	price := priceScore(deal.AskingPrice, buyer, mc, &notes)
	exit := exitSpeedScore(dealExitSpeed(verdict.BestStrategy), buyer.ExitSpeed, &notes)
	history := historyScore(buyer, &notes)

	w := mc.Weights
	total := zip*w.Zip + strat*w.Strategy + price*w.Price + exit*w.ExitSpeed + history*w.History + buyer.Reliability*w.Reliability
	total = clamp(math.Round(total * 10))

	quality, recommendation := qualify(total)

	return models.MatchResult{
		ID:             uuid.NewString(),
		DealID:         deal.ID,
		BuyerID:        buyer.ID,
		ZipScore:       zip,
		StrategyScore:  strat,
		PriceScore:     price,
		ExitSpeedScore: exit,
		HistoryScore:   history,
		Reliability:    buyer.Reliability,
		TotalScore:     total,
		Quality:        quality,
		Rationale:      strings.Join(notes, "; "),
		Recommendation: recommendation,
	}
}

func zipScore(deal *models.Deal, buyer *models.Buyer, notes *[]string) float64 {
	if deal.ZIP == "" || len(buyer.PreferredZIPs) == 0 {
		*notes = append(*notes, "location unknown")
		return neutralScore
	}

	prefix := deal.ZIPPrefix()
	prefixMatch := false
	for _, z := range buyer.PreferredZIPs {
		if z == deal.ZIP {
			*notes = append(*notes, "exact ZIP match")
			return 10
		}
		if prefix != "" && len(z) >= 3 && z[:3] == prefix {
			prefixMatch = true
		}
	}
	if prefixMatch {
		*notes = append(*notes, "ZIP prefix match")
		return 7
	}
	for _, c := range buyer.PreferredCities {
		if strings.EqualFold(c, deal.City) {
			*notes = append(*notes, "same city")
			return 6
		}
	}
	*notes = append(*notes, "outside preferred area")
	return 3
}

func strategyScore(best models.Strategy, preferred models.BuyerStrategy, notes *[]string) float64 {
	if best == "" || preferred == "" {
		*notes = append(*notes, "strategy unknown")
		return neutralScore
	}
	if preferred == models.BuyerStrategyAny {
		*notes = append(*notes, "buyer takes any strategy")
		return 8
	}
	if string(preferred) == string(best) {
		*notes = append(*notes, fmt.Sprintf("exact %s fit", best))
		return 10
	}
	for _, compat := range strategyCompat[best] {
		if compat == preferred {
			*notes = append(*notes, fmt.Sprintf("%s compatible with %s", preferred, best))
			return 7
		}
	}
	*notes = append(*notes, "strategy mismatch")
	return 4
}

func priceScore(price float64, buyer *models.Buyer, mc *config.MatchingConfig, notes *[]string) float64 {
	if price <= 0 {
		*notes = append(*notes, "price unknown")
		return neutralScore
	}

	min, max := buyer.PriceMin, buyer.PriceMax
	if max <= 0 {
		// Unbounded band: anything at or above min is in range.
		if price >= min {
			*notes = append(*notes, "inside open-ended budget")
			return 8
		}
	} else if price >= min && price <= max {
		pos := 0.5
		if max > min {
			pos = (price - min) / (max - min)
		}
		switch {
		case pos >= mc.SweetSpotLow && pos <= mc.SweetSpotHigh:
			*notes = append(*notes, "price in sweet spot")
			return 10
		case pos >= mc.BandLow && pos <= mc.BandHigh:
			*notes = append(*notes, "price well inside budget")
			return 8
		default:
			*notes = append(*notes, "price at budget edge")
			return 6
		}
	}

	// Outside the band: a configurable tolerance keeps near misses alive.
	tolerance := mc.PriceTolerancePct
	if price < min && price >= min*(1-tolerance) {
		*notes = append(*notes, "slightly under budget floor")
		return 5
	}
	if max > 0 && price > max && price <= max*(1+tolerance) {
		*notes = append(*notes, "slightly over budget")
		return 5
	}
	*notes = append(*notes, "outside budget")
	return 2
}

func exitSpeedScore(dealSpeed, buyerSpeed models.ExitSpeed, notes *[]string) float64 {
	d, b := dealSpeed.Order(), buyerSpeed.Order()
	if d < 0 || b < 0 {
		*notes = append(*notes, "exit horizon unknown")
		return neutralScore
	}
	switch abs(d - b) {
	case 0:
		*notes = append(*notes, "exit horizon aligned")
		return 10
	case 1:
		*notes = append(*notes, "exit horizon adjacent")
		return 7
	default:
		*notes = append(*notes, "exit horizon mismatch")
		return 4
	}
}

func historyScore(buyer *models.Buyer, notes *[]string) float64 {
	score := 5.0
	switch {
	case buyer.DealsClosed >= 20:
		score += 3
	case buyer.DealsClosed >= 10:
		score += 2
	case buyer.DealsClosed >= 3:
		score += 1
	}
	switch {
	case buyer.AvgCloseDays > 0 && buyer.AvgCloseDays <= 14:
		score += 2
	case buyer.AvgCloseDays > 0 && buyer.AvgCloseDays <= 30:
		score += 1
	}
	if score > 10 {
		score = 10
	}
	if buyer.DealsClosed > 0 {
		*notes = append(*notes, fmt.Sprintf("%d deals closed", buyer.DealsClosed))
	}
	return score
}

func qualify(total float64) (models.MatchQuality, models.MatchRecommendation) {
	switch {
	case total >= 90:
		return models.MatchPerfect, models.RecommendSendNow
	case total >= 75:
		return models.MatchStrong, models.RecommendSend
	case total >= 60:
		return models.MatchGood, models.RecommendMonitor
	default:
		return models.MatchWeak, models.RecommendDontSend
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
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
