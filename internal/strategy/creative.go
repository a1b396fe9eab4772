package strategy

import (
	"fmt"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// CreativeEngine evaluates the four creative-finance sub-structures plus the
// hybrid combiner and picks the best viable one.
type CreativeEngine struct{}

func (CreativeEngine) Name() models.Strategy {
	return models.StrategyCreative
}

func (CreativeEngine) Evaluate(deal *models.Deal, repair *models.RepairAssessment, market *models.MarketSignal, cfg *config.ScoringConfig) models.StrategyResult {
	cc := &cfg.Creative

	equity := equityFraction(deal)
	rent := rentEstimate(deal, cc.RentPriceRatio)
	// Taxes and insurance ride along in every structure; reuse the LTR
	// carrying assumptions rather than keeping a second set.
	carrying := deal.AskingPrice * (cfg.LTR.AnnualTaxRate + cfg.LTR.AnnualInsuranceRate) / 12
	underlying := monthlyPayment(deal.MortgageBalance, cc.UnderlyingRate, cc.UnderlyingTermYears)

	sub2 := evaluateSubjectTo(deal, equity, rent, underlying, carrying, cc)
	wrap := evaluateWrap(deal, equity, underlying, cc)
	carry := evaluateSellerCarry(deal, equity, rent, carrying, cc)
	lease := evaluateLeaseOption(deal, rent, cc)

	// The hybrid combiner recognizes exactly two pairings; both legs must be
	// independently viable.
	hybrid := combineHybrid(sub2, wrap, carry, lease, cc)

	structures := []models.StructureEvaluation{sub2, wrap, carry, lease, hybrid}

	best := models.StructureEvaluation{Score: -1}
	found := false
	for _, s := range structures {
		if s.Viable && s.Score > best.Score {
			best = s
			found = true
		}
	}

	proj := models.CreativeProjection{
		Structures: structures,
		EquityPct:  equity,
	}

	var score float64
	var verdict string
	if found {
		proj.Best = best.Structure
		score = clamp(best.Score)
		verdict = verdictFor(score)
	} else {
		score = 25
		verdict = models.StrategyAvoid
	}

	return models.StrategyResult{
		DealID:   deal.ID,
		Strategy: models.StrategyCreative,
		Score:    score,
		Verdict:  verdict,
		Creative: &proj,
	}
}

// equityFraction is the seller's equity as a share of ARV.
func equityFraction(deal *models.Deal) float64 {
	if deal.ARV <= 0 {
		return 0
	}
	eq := (deal.ARV - deal.MortgageBalance) / deal.ARV
	if eq < 0 {
		return 0
	}
	return eq
}

func evaluateSubjectTo(deal *models.Deal, equity, rent, underlying, carrying float64, cc *config.CreativeConfig) models.StructureEvaluation {
	ev := models.StructureEvaluation{Structure: models.CreativeSubjectTo}

	if deal.MortgageBalance <= 0 {
		ev.Reason = "no existing mortgage to take over"
		return ev
	}
	if equity < cc.Sub2EquityMin || equity > cc.Sub2EquityMax {
		ev.Reason = fmt.Sprintf("equity %.0f%% outside %.0f-%.0f%% window",
			equity*100, cc.Sub2EquityMin*100, cc.Sub2EquityMax*100)
		return ev
	}

	ev.MonthlyCashFlow = rent - underlying - carrying
	if ev.MonthlyCashFlow < cc.MinMonthlyCashFlow {
		ev.Reason = fmt.Sprintf("cash flow $%.0f/mo below $%.0f floor", ev.MonthlyCashFlow, cc.MinMonthlyCashFlow)
		return ev
	}

	ev.Viable = true
	ev.Terms = fmt.Sprintf("take over $%.0f balance, est. payment $%.0f/mo", deal.MortgageBalance, underlying)
	ev.Score = 50 + config.PointsFor(ev.MonthlyCashFlow, cc.CashFlowTiers, 0)
	if equity <= (cc.Sub2EquityMin+cc.Sub2EquityMax)/2 {
		ev.Score += 10
	} else {
		ev.Score += 5
	}
	return ev
}

func evaluateWrap(deal *models.Deal, equity, underlying float64, cc *config.CreativeConfig) models.StructureEvaluation {
	ev := models.StructureEvaluation{Structure: models.CreativeWrap}

	if deal.MortgageBalance <= 0 {
		ev.Reason = "no underlying loan to wrap"
		return ev
	}
	if equity > cc.Sub2EquityMax {
		ev.Reason = "too much equity; a wrap needs a substantial underlying balance"
		return ev
	}

	wrapPrice := deal.AskingPrice * (1 + cc.WrapMarkupPct)
	wrapPayment := monthlyPayment(wrapPrice*(1-cc.CarryDownPct), cc.WrapRate, cc.UnderlyingTermYears)
	spread := wrapPayment - underlying

	ev.MonthlyCashFlow = spread
	if spread < cc.MinWrapSpread {
		ev.Reason = fmt.Sprintf("wrap spread $%.0f/mo below $%.0f floor", spread, cc.MinWrapSpread)
		return ev
	}

	ev.Viable = true
	ev.Terms = fmt.Sprintf("resell at $%.0f wrapping $%.0f balance, spread $%.0f/mo",
		wrapPrice, deal.MortgageBalance, spread)
	ev.Score = 50 + config.PointsFor(spread, cc.CashFlowTiers, 0)
	if spread >= 2*cc.MinWrapSpread {
		ev.Score += 5
	}
	return ev
}

func evaluateSellerCarry(deal *models.Deal, equity, rent, carrying float64, cc *config.CreativeConfig) models.StructureEvaluation {
	ev := models.StructureEvaluation{Structure: models.CreativeSellerCarry}

	if deal.MortgageBalance > 0 && equity < cc.CarryEquityMin {
		ev.Reason = fmt.Sprintf("seller equity %.0f%% below %.0f%% carry floor", equity*100, cc.CarryEquityMin*100)
		return ev
	}

	carryPayment := monthlyPayment(deal.AskingPrice*(1-cc.CarryDownPct), cc.CarryRate, cc.CarryTermYears)
	ev.MonthlyCashFlow = rent - carryPayment - carrying
	if ev.MonthlyCashFlow < cc.MinMonthlyCashFlow {
		ev.Reason = fmt.Sprintf("cash flow $%.0f/mo below $%.0f floor", ev.MonthlyCashFlow, cc.MinMonthlyCashFlow)
		return ev
	}

	ev.Viable = true
	ev.Terms = fmt.Sprintf("%.0f%% down, seller carries $%.0f at %.1f%%",
		cc.CarryDownPct*100, deal.AskingPrice*(1-cc.CarryDownPct), cc.CarryRate*100)
	ev.Score = 50 + config.PointsFor(ev.MonthlyCashFlow, cc.CashFlowTiers, 0) + 5
	return ev
}

func evaluateLeaseOption(deal *models.Deal, rent float64, cc *config.CreativeConfig) models.StructureEvaluation {
	ev := models.StructureEvaluation{Structure: models.CreativeLeaseOption}

	spread := rent * (1 - cc.LeasePctToSeller)
	ev.MonthlyCashFlow = spread
	if spread < cc.MinLeaseSpread {
		ev.Reason = fmt.Sprintf("lease spread $%.0f/mo below $%.0f floor", spread, cc.MinLeaseSpread)
		return ev
	}

	ev.Viable = true
	ev.Terms = fmt.Sprintf("lease at $%.0f/mo passing $%.0f to seller, option fee $%.0f",
		rent, rent*cc.LeasePctToSeller, deal.AskingPrice*cc.OptionFeePct)
	ev.Score = 50 + config.PointsFor(spread, cc.CashFlowTiers, 0)
	return ev
}

// combineHybrid activates for exactly two pairings: SubjectTo+Wrap and
// SellerCarry+LeaseOption. Other combinations are intentionally not
// recognized.
func combineHybrid(sub2, wrap, carry, lease models.StructureEvaluation, cc *config.CreativeConfig) models.StructureEvaluation {
	ev := models.StructureEvaluation{Structure: models.CreativeHybrid}

	type pairing struct {
		a, b  models.StructureEvaluation
		terms string
	}
	pairings := []pairing{
		{sub2, wrap, "subject-to entry with wrap resale"},
		{carry, lease, "seller carry funded through a lease option"},
	}

	for _, p := range pairings {
		if !p.a.Viable || !p.b.Viable {
			continue
		}
		score := (p.a.Score+p.b.Score)/2 + cc.HybridBonus
		if !ev.Viable || score > ev.Score {
			ev.Viable = true
			ev.Score = score
			ev.Terms = p.terms
			ev.MonthlyCashFlow = p.a.MonthlyCashFlow + p.b.MonthlyCashFlow
		}
	}

	if !ev.Viable {
		ev.Reason = "no recognized pairing with both legs viable"
	}
	return ev
}
