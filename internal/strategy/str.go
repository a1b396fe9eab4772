package strategy

import (
	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// STREngine models a short-term (nightly) rental exit.
type STREngine struct{}

func (STREngine) Name() models.Strategy {
	return models.StrategySTR
}

func (STREngine) Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult {
	sc := &cfg.STR

	adr := sc.BaseADR * bedFactor(deal.Beds, sc) * stateADRMult(deal.State, sc) * typeADRMult(deal.PropertyType, sc)

	// 30.4 average nights per month; occupancy thins both revenue and turns.
	occupiedNights := 30.4 * sc.Occupancy
	gross := adr * occupiedNights

	turnsPerMonth := 0.0
	if sc.AvgStayNights > 0 {
		turnsPerMonth = occupiedNights / sc.AvgStayNights
	}

	net := gross
	net -= gross * sc.PlatformFeePct
	net -= gross * sc.ManagementPct
	net -= sc.CleaningPerTurn * turnsPerMonth

	cashInvested := deal.AskingPrice*sc.DownPaymentPct + repair.CostMid + sc.FurnishingCost
	coc := safeRatio(net*12, cashInvested)

	proj := models.RentalProjection{
		ADR:          adr,
		Occupancy:    sc.Occupancy,
		MonthlyGross: gross,
		MonthlyNet:   net,
		AnnualNet:    net * 12,
		CashInvested: cashInvested,
		CashOnCash:   coc,
		TurnsPerYear: turnsPerMonth * 12,
	}

	score := 50.0
	score += config.PointsFor(net, sc.CashFlowTiers, sc.NegativeCashFlowPenalty)
	if net > 0 {
		score += config.PointsFor(coc, sc.CoCTiers, 0)
	}
	score -= regulationPenalty(deal.State, sc)
	if containsState(sc.SeasonalStates, deal.State) {
		score += sc.SeasonalityBonus
	}
	score = clamp(score)

	verdict := verdictFor(score)
	if net <= 0 {
		verdict = models.StrategyAvoid
	}

	return models.StrategyResult{
		DealID:   deal.ID,
		Strategy: models.StrategySTR,
		Score:    score,
		Verdict:  verdict,
		Rental:   &proj,
	}
}

// bedFactor scales nightly rate by bedroom count; anything past the table
// uses the capped factor.
func bedFactor(beds int, sc *config.STRConfig) float64 {
	if f, ok := sc.BedFactors[beds]; ok {
		return f
	}
	return sc.MaxBedFactor
}

func stateADRMult(state string, sc *config.STRConfig) float64 {
	if m, ok := sc.StateADRMult[state]; ok {
		return m
	}
	return 1.0
}

func typeADRMult(t models.PropertyType, sc *config.STRConfig) float64 {
	if m, ok := sc.TypeADRMult[t]; ok {
		return m
	}
	return 1.0
}

func regulationPenalty(state string, sc *config.STRConfig) float64 {
	if containsState(sc.HighRegulationStates, state) {
		return sc.HighRegulationPenalty
	}
	if containsState(sc.ModerateRegulationStates, state) {
		return sc.ModerateRegulationPenalty
	}
	return 0
}

func containsState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}
