// Package strategy holds the five exit-strategy valuation engines and the
// multi-exit comparator. Every engine is a pure function of the deal, its
// repair assessment, its market signal and the scoring config.
package strategy

import (
	"math"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// Engine evaluates one exit strategy for a deal.
type Engine interface {
	Name() models.Strategy
	Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult
}

// Registry returns the engines in declaration order. The order is load
// bearing: the comparator breaks score ties by it.
func Registry() []Engine {
	return []Engine{
		FlipEngine{},
		STREngine{},
		MTREngine{},
		LTREngine{},
		CreativeEngine{},
	}
}

// EvaluateAll runs every registered engine against the deal.
func EvaluateAll(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) []models.StrategyResult {
	engines := Registry()
	results := make([]models.StrategyResult, 0, len(engines))
	for _, eng := range engines {
		results = append(results, eng.Evaluate(deal, repair, market, cfg))
	}
	return results
}

// verdictFor maps a strategy score to its verdict label.
func verdictFor(score float64) string {
	switch {
	case score >= 85:
		return models.StrategyStrongBuy
	case score >= 70:
		return models.StrategyBuy
	case score >= 55:
		return models.StrategyConsider
	case score >= 40:
		return models.StrategyWeak
	default:
		return models.StrategyAvoid
	}
}

// monthlyPayment is the standard amortization formula: principal at annual
// rate over termYears, paid monthly. Zero inputs return 0 rather than NaN.
func monthlyPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return principal / float64(termYears*12)
	}
	r := annualRate / 12
	n := float64(termYears * 12)
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// rentEstimate returns the deal's rent estimate, falling back to a fixed
// rent-to-price ratio when ingestion supplied none.
func rentEstimate(deal *models.Deal, ratio float64) float64 {
	if deal.MonthlyRentEstimate > 0 {
		return deal.MonthlyRentEstimate
	}
	return deal.AskingPrice * ratio
}

// safeRatio guards every ratio computation against a zero denominator.
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
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
