package strategy

import (
	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// FlipEngine models a fix-and-flip exit: buy, rehab, resell at ARV.
type FlipEngine struct{}

func (FlipEngine) Name() models.Strategy {
	return models.StrategyFlip
}

func (FlipEngine) Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult {
	fc := &cfg.Flip

	price := deal.AskingPrice
	rehab := repair.CostMid
	months := holdingMonths(deal.DaysOnMarket, fc)

	holding := price * fc.MonthlyHoldingRate * months
	agentFees := deal.ARV * fc.AgentFeePct
	closing := price * fc.ClosingCostPct

	invested := price + rehab + holding + closing
	profit := deal.ARV - price - rehab - holding - agentFees - closing

	proj := models.FlipProjection{
		HoldingMonths: months,
		HoldingCost:   holding,
		AgentFees:     agentFees,
		ClosingCosts:  closing,
		RehabCost:     rehab,
		TotalInvested: invested,
		Profit:        profit,
		ProfitMargin:  safeRatio(profit, deal.ARV),
		ROI:           safeRatio(profit, invested),
		MaxOffer:      deal.ARV*fc.MAORulePct*market.MAOMultiplier - rehab,
	}

	score := 50.0
	score += config.PointsFor(profit, fc.ProfitTiers, fc.NegativeProfitPenalty)
	if profit > 0 {
		score += config.PointsFor(proj.ROI, fc.ROITiers, 0)
	}
	if fc.ExitRiskDivisor > 0 {
		score -= market.ExitRiskScore / fc.ExitRiskDivisor
	}
	score = clamp(score)

	verdict := verdictFor(score)
	if profit <= 0 {
		verdict = models.StrategyAvoid
	}

	return models.StrategyResult{
		DealID:   deal.ID,
		Strategy: models.StrategyFlip,
		Score:    score,
		Verdict:  verdict,
		Flip:     &proj,
	}
}

// holdingMonths estimates total hold time from days on market; slower
// markets mean longer resale windows.
func holdingMonths(dom int, fc *config.FlipConfig) float64 {
	if dom <= 0 {
		dom = models.DefaultDaysOnMarket
	}
	for _, band := range fc.HoldingBands {
		if dom <= band.MaxDOM {
			return band.Months
		}
	}
	return fc.FallbackHoldingMonths
}
