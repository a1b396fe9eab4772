package strategy

import (
	"time"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// LTREngine models a long-term buy-and-hold rental exit with conventional
// financing.
type LTREngine struct{}

func (LTREngine) Name() models.Strategy {
	return models.StrategyLTR
}

func (LTREngine) Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult {
	lc := &cfg.LTR

	rent := rentEstimate(deal, lc.RentPriceRatio)
	price := deal.AskingPrice

	noi := rent * (1 - lc.VacancyRate)
	noi -= rent * lc.MaintenancePct
	noi -= rent * lc.CapExPct
	noi -= rent * lc.ManagementPct
	noi -= price * lc.AnnualTaxRate / 12
	noi -= price * lc.AnnualInsuranceRate / 12

	debtService := monthlyPayment(price*lc.LTV, lc.InterestRate, lc.TermYears)
	dscr := safeRatio(noi, debtService)
	cashFlow := noi - debtService

	cashInvested := price*(1-lc.LTV) + repair.CostMid + price*lc.ClosingCostPct
	coc := safeRatio(cashFlow*12, cashInvested)

	holdQuality := holdQualityScore(dscr, coc, deal.Age(time.Now()))

	proj := models.RentalProjection{
		MonthlyGross:     rent,
		MonthlyNet:       cashFlow,
		AnnualNet:        cashFlow * 12,
		NOI:              noi,
		DebtService:      debtService,
		DSCR:             dscr,
		CashOnCash:       coc,
		CashInvested:     cashInvested,
		HoldQualityScore: holdQuality,
	}

	score := 50.0
	score += config.PointsFor(cashFlow, lc.CashFlowTiers, lc.NegativeCashFlowPenalty)
	score += config.PointsFor(dscr, lc.DSCRTiers, 0)
	if cashFlow > 0 {
		score += config.PointsFor(coc, lc.CoCTiers, 0)
	}
	score += holdQuality / 2
	score = clamp(score)

	verdict := verdictFor(score)
	// Lenders won't touch sub-1.0 coverage; the deal cannot be financed as
	// a rental no matter how well it scores otherwise.
	if dscr < 1.0 {
		verdict = models.StrategyAvoid
	}

	return models.StrategyResult{
		DealID:   deal.ID,
		Strategy: models.StrategyLTR,
		Score:    score,
		Verdict:  verdict,
		Rental:   &proj,
	}
}

// holdQualityScore grades how comfortable the hold is: coverage headroom,
// cash-on-cash, and property age all contribute. Range 0-20.
func holdQualityScore(dscr, coc float64, age int) float64 {
	var q float64
	switch {
	case dscr >= 1.5:
		q += 10
	case dscr >= 1.25:
		q += 6
	case dscr >= 1.0:
		q += 3
	}
	switch {
	case coc >= 0.08:
		q += 6
	case coc >= 0.05:
		q += 3
	}
	switch {
	case age < 30:
		q += 4
	case age < 50:
		q += 2
	}
	return q
}
