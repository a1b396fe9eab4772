// Package market derives sales velocity, exit risk, saturation and market
// heat for a deal from days-on-market and geography. All lookups are table
// driven; ZIP-level adjustments go through a shared TTL cache.
package market

import (
	"time"

	"github.com/sirupsen/logrus"

	"dealscope/server/config"
	"dealscope/server/internal/models"
)

// Scorer computes market signals. It is safe for concurrent use: the only
// mutable state is the ZIP cache, which is internally synchronized.
type Scorer struct {
	zips   *zipCache
	logger *logrus.Logger
}

func NewScorer(zipTTL time.Duration, logger *logrus.Logger) *Scorer {
	return &Scorer{
		zips:   newZIPCache(zipTTL),
		logger: logger,
	}
}

// Score produces the market signal for a deal. The repair assessment feeds
// the exit-risk component: heavier rehab narrows the exit.
func (s *Scorer) Score(deal *models.Deal, repair *models.RepairAssessment, cfg *config.ScoringConfig) models.MarketSignal {
	mc := &cfg.Market

	velScore, velTier := s.velocity(deal, mc)
	exitScore, exitTier := s.exitRisk(deal, repair, velTier, mc)
	satScore, satTier := s.saturation(deal, mc)

	signal := models.MarketSignal{
		DealID:          deal.ID,
		VelocityScore:   velScore,
		VelocityTier:    velTier,
		ExitRiskScore:   exitScore,
		ExitRiskTier:    exitTier,
		MAOMultiplier:   maoMultiplier(exitTier, mc),
		SaturationScore: satScore,
		SaturationTier:  satTier,
		VerdictBoost:    mc.VerdictBoost[satTier],
		HeatScore:       s.heat(deal, velScore, satScore, mc),
	}

	s.logger.WithFields(logrus.Fields{
		"deal_id":   deal.ID,
		"velocity":  velTier,
		"exit_risk": exitTier,
		"heat":      signal.HeatScore,
	}).Debug("Scored market signal")

	return signal
}

func (s *Scorer) velocity(deal *models.Deal, mc *config.MarketConfig) (float64, models.VelocityTier) {
	dom := deal.DaysOnMarket
	if dom <= 0 {
		dom = models.DefaultDaysOnMarket
	}

	// The last band is the catch-all.
	band := mc.VelocityBands[len(mc.VelocityBands)-1]
	for _, b := range mc.VelocityBands[:len(mc.VelocityBands)-1] {
		if dom <= b.MaxDOM {
			band = b
			break
		}
	}

	score := band.Score
	if containsState(mc.HotStates, deal.State) {
		score += mc.StateHotBonus
	} else if containsState(mc.ColdStates, deal.State) {
		score -= mc.StateColdPenalty
	}
	score += s.zips.velocityBonus(deal.ZIP)

	return clamp(score), band.Tier
}

func (s *Scorer) exitRisk(deal *models.Deal, repair *models.RepairAssessment, velTier models.VelocityTier, mc *config.MarketConfig) (float64, models.ExitRiskTier) {
	risk := mc.ExitRiskBase

	switch velTier {
	case models.VelocitySlow:
		risk += mc.SlowVelocityAdj
	case models.VelocityStale:
		risk += mc.StaleVelocityAdj
	}

	if deal.ARV > 0 && deal.ARV < 100000 {
		risk += mc.LowARVRiskAdj
	} else {
		risk += config.PointsFor(deal.ARV, mc.ARVRiskTiers, 0)
	}

	if repair != nil {
		risk += mc.RepairRiskAdj[repair.Tier]
	}
	risk += mc.TypeRiskAdj[deal.PropertyType]

	risk = clamp(risk)

	var tier models.ExitRiskTier
	switch {
	case risk <= mc.ExitLowMax:
		tier = models.ExitRiskLow
	case risk <= mc.ExitModerateMax:
		tier = models.ExitRiskModerate
	case risk <= mc.ExitHighMax:
		tier = models.ExitRiskHigh
	default:
		tier = models.ExitRiskCritical
	}

	return risk, tier
}

func (s *Scorer) saturation(deal *models.Deal, mc *config.MarketConfig) (float64, models.SaturationTier) {
	score := mc.SaturationBase

	if containsState(mc.SaturatedStates, deal.State) {
		score += mc.StateSaturationAdj
	} else if containsState(mc.OpenStates, deal.State) {
		score -= mc.StateSaturationAdj
	}

	// Cheaper inventory draws heavier investor competition.
	price := deal.AskingPrice
	switch {
	case price > 0 && price < 100000:
		score += mc.PriceUnder100K
	case price > 0 && price < 150000:
		score += mc.PriceUnder150K
	case price > 0 && price < 200000:
		score += mc.PriceUnder200K
	}

	score += s.zips.saturationAdj(deal.ZIP)
	score = clamp(score)

	var tier models.SaturationTier
	switch {
	case score <= mc.SaturationLowMax:
		tier = models.SaturationLow
	case score <= mc.SaturationModerateMax:
		tier = models.SaturationModerate
	case score <= mc.SaturationHighMax:
		tier = models.SaturationHigh
	default:
		tier = models.SaturationSaturated
	}

	return score, tier
}

func (s *Scorer) heat(deal *models.Deal, velocity, saturation float64, mc *config.MarketConfig) float64 {
	heat := 50 + mc.HeatVelocityWeight*(velocity-50) - mc.HeatSaturationWeight*(saturation-50)

	if deal.DaysOnMarket > 0 && deal.DaysOnMarket <= mc.HeatFastDOM {
		heat += mc.HeatFastBonus
	} else if deal.DaysOnMarket >= mc.HeatStaleDOM {
		heat -= mc.HeatStalePenalty
	}

	return clamp(heat)
}

// maoMultiplier returns the maximum-allowable-offer discount for an exit
// tier. Unknown tiers get the Moderate multiplier, the neutral default.
func maoMultiplier(tier models.ExitRiskTier, mc *config.MarketConfig) float64 {
	if m, ok := mc.MAOMultiplier[tier]; ok {
		return m
	}
	return mc.MAOMultiplier[models.ExitRiskModerate]
}

func containsState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
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
