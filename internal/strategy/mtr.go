package strategy

import (
	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// MTREngine models a mid-term (monthly, furnished) rental exit, typically
// serving traveling professionals.
type MTREngine struct{}

func (MTREngine) Name() models.Strategy {
	return models.StrategyMTR
}

func (MTREngine) Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult {
	mc := &cfg.MTR

	baseRent := rentEstimate(deal, mc.RentPriceRatio)
	furnished := baseRent * mc.FurnishedPremium

	turnsPerYear := 0.0
	if mc.AvgStayMonths+mc.VacancyGapMonths > 0 {
		turnsPerYear = 12 / (mc.AvgStayMonths + mc.VacancyGapMonths)
	}

	furnitureAmort := 0.0
	if mc.FurnitureAmortMonths > 0 {
		furnitureAmort = mc.FurnitureCost / mc.FurnitureAmortMonths
	}

	net := furnished - mc.MonthlyUtilities - furnitureAmort - furnished*mc.ManagementPct

	// The LTR-equivalent net is what the same unit would clear unfurnished
	// on a 12-month lease; MTR has to beat it to justify the extra churn.
	ltrEquivalent := baseRent * (1 - cfg.LTR.VacancyRate - cfg.LTR.ManagementPct)
	advantage := net - ltrEquivalent

	proj := models.RentalProjection{
		MonthlyGross:  furnished,
		MonthlyNet:    net,
		AnnualNet:     net * 12,
		TurnsPerYear:  turnsPerYear,
		LTREquivalent: ltrEquivalent,
	}

	score := 50.0
	score += config.PointsFor(net, mc.CashFlowTiers, mc.NegativeCashFlowPenalty)
	if mc.AvgStayMonths >= mc.StabilityStayMonths {
		score += mc.StabilityStayBonus
	}
	if turnsPerYear > 0 && turnsPerYear <= mc.StabilityMaxTurns {
		score += mc.StabilityTurnBonus
	}
	if net > 0 {
		score += config.PointsFor(advantage, mc.AdvantageTiers, 0)
	}
	score = clamp(score)

	verdict := verdictFor(score)
	if net <= 0 {
		verdict = models.StrategyAvoid
	}

	return models.StrategyResult{
		DealID:   deal.ID,
		Strategy: models.StrategyMTR,
		Score:    score,
		Verdict:  verdict,
		Rental:   &proj,
	}
}
