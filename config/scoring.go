package config

import "dealscope/server/internal/models"

// ScoringConfig is the full table of thresholds, weights and multipliers used
// by the evaluation pipeline. Every component receives it by reference; none
// of them read global state. Defaults come from DefaultScoringConfig and can
// be overridden field-by-field through a JSON file (see loader.go).
type ScoringConfig struct {
	Repair   RepairConfig   `json:"repair"`
	Market   MarketConfig   `json:"market"`
	Flip     FlipConfig     `json:"flip"`
	STR      STRConfig      `json:"str"`
	MTR      MTRConfig      `json:"mtr"`
	LTR      LTRConfig      `json:"ltr"`
	Creative CreativeConfig `json:"creative"`
	Verdict  VerdictConfig  `json:"verdict"`
	Matching MatchingConfig `json:"matching"`
}

// CostRange is a low/high dollar band.
type CostRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ScoreTier awards Points when the measured value is >= Min. Tiers are
// evaluated in order, first match wins, so they must be sorted by Min
// descending.
type ScoreTier struct {
	Min    float64 `json:"min"`
	Points float64 `json:"points"`
}

// PointsFor returns the points of the first tier the value reaches, or the
// fallback when no tier matches.
func PointsFor(value float64, tiers []ScoreTier, fallback float64) float64 {
	for _, t := range tiers {
		if value >= t.Min {
			return t.Points
		}
	}
	return fallback
}

type RepairConfig struct {
	// CostPerSqft maps each complexity tier to a $/sqft rehab band.
	CostPerSqft map[models.RepairTier]CostRange `json:"cost_per_sqft"`

	// CategoryBase is the full-scope dollar cost per category at Heavy tier.
	CategoryBase map[string]float64 `json:"category_base"`

	// TierFactor scales category costs by complexity tier.
	TierFactor map[models.RepairTier]float64 `json:"tier_factor"`

	ContingencyPct float64 `json:"contingency_pct"`

	BaseRisk map[models.RepairTier]float64 `json:"base_risk"`

	// Age fallback bands used when no keyword matches.
	AgeCosmeticMax int `json:"age_cosmetic_max"`
	AgeModerateMax int `json:"age_moderate_max"`
	AgeHeavyMax    int `json:"age_heavy_max"`

	OldAgeRiskAdj   float64 `json:"old_age_risk_adj"`
	NewAgeRiskAdj   float64 `json:"new_age_risk_adj"`
	PropertyRiskAdj map[models.PropertyType]float64 `json:"property_risk_adj"`
}

// VelocityBand maps a days-on-market ceiling to a tier and base score.
type VelocityBand struct {
	MaxDOM int                 `json:"max_dom"`
	Tier   models.VelocityTier `json:"tier"`
	Score  float64             `json:"score"`
}

type MarketConfig struct {
	// VelocityBands are checked in order; the last band is the catch-all and
	// its MaxDOM is ignored.
	VelocityBands  []VelocityBand `json:"velocity_bands"`
	StateHotBonus  float64        `json:"state_hot_bonus"`
	StateColdPenalty float64      `json:"state_cold_penalty"`
	HotStates      []string       `json:"hot_states"`
	ColdStates     []string       `json:"cold_states"`

	ExitRiskBase     float64 `json:"exit_risk_base"`
	SlowVelocityAdj  float64 `json:"slow_velocity_adj"`
	StaleVelocityAdj float64 `json:"stale_velocity_adj"`
	// ARVRiskTiers award risk points by ARV band (sorted by Min descending).
	ARVRiskTiers   []ScoreTier                     `json:"arv_risk_tiers"`
	LowARVRiskAdj  float64                         `json:"low_arv_risk_adj"`
	RepairRiskAdj  map[models.RepairTier]float64   `json:"repair_risk_adj"`
	TypeRiskAdj    map[models.PropertyType]float64 `json:"type_risk_adj"`
	ExitLowMax     float64                         `json:"exit_low_max"`
	ExitModerateMax float64                        `json:"exit_moderate_max"`
	ExitHighMax    float64                         `json:"exit_high_max"`
	MAOMultiplier  map[models.ExitRiskTier]float64 `json:"mao_multiplier"`

	SaturationBase     float64  `json:"saturation_base"`
	StateSaturationAdj float64  `json:"state_saturation_adj"`
	SaturatedStates    []string `json:"saturated_states"`
	OpenStates         []string `json:"open_states"`
	PriceUnder200K     float64  `json:"price_under_200k"`
	PriceUnder150K     float64  `json:"price_under_150k"`
	PriceUnder100K     float64  `json:"price_under_100k"`
	SaturationLowMax      float64 `json:"saturation_low_max"`
	SaturationModerateMax float64 `json:"saturation_moderate_max"`
	SaturationHighMax     float64 `json:"saturation_high_max"`
	VerdictBoost map[models.SaturationTier]float64 `json:"verdict_boost"`

	HeatVelocityWeight   float64 `json:"heat_velocity_weight"`
	HeatSaturationWeight float64 `json:"heat_saturation_weight"`
	HeatFastDOM          int     `json:"heat_fast_dom"`
	HeatFastBonus        float64 `json:"heat_fast_bonus"`
	HeatStaleDOM         int     `json:"heat_stale_dom"`
	HeatStalePenalty     float64 `json:"heat_stale_penalty"`
}

// HoldingBand maps a days-on-market ceiling to expected flip holding months.
type HoldingBand struct {
	MaxDOM int     `json:"max_dom"`
	Months float64 `json:"months"`
}

type FlipConfig struct {
	// MAORulePct is the classic percent-of-ARV offer ceiling, discounted
	// further by the market MAO multiplier.
	MAORulePct         float64       `json:"mao_rule_pct"`
	MonthlyHoldingRate float64       `json:"monthly_holding_rate"`
	AgentFeePct        float64       `json:"agent_fee_pct"`
	ClosingCostPct     float64       `json:"closing_cost_pct"`
	HoldingBands       []HoldingBand `json:"holding_bands"`
	// FallbackHoldingMonths applies past the last holding band.
	FallbackHoldingMonths float64     `json:"fallback_holding_months"`
	ProfitTiers           []ScoreTier `json:"profit_tiers"`
	NegativeProfitPenalty float64     `json:"negative_profit_penalty"`
	ROITiers              []ScoreTier `json:"roi_tiers"`
	ExitRiskDivisor       float64     `json:"exit_risk_divisor"`
}

type STRConfig struct {
	BaseADR         float64             `json:"base_adr"`
	BedFactors      map[int]float64     `json:"bed_factors"`
	MaxBedFactor    float64             `json:"max_bed_factor"`
	StateADRMult    map[string]float64  `json:"state_adr_mult"`
	TypeADRMult     map[models.PropertyType]float64 `json:"type_adr_mult"`
	Occupancy       float64             `json:"occupancy"`
	PlatformFeePct  float64             `json:"platform_fee_pct"`
	ManagementPct   float64             `json:"management_pct"`
	CleaningPerTurn float64             `json:"cleaning_per_turn"`
	AvgStayNights   float64             `json:"avg_stay_nights"`
	FurnishingCost  float64             `json:"furnishing_cost"`
	DownPaymentPct  float64             `json:"down_payment_pct"`
	HighRegulationStates     []string   `json:"high_regulation_states"`
	ModerateRegulationStates []string   `json:"moderate_regulation_states"`
	HighRegulationPenalty    float64    `json:"high_regulation_penalty"`
	ModerateRegulationPenalty float64   `json:"moderate_regulation_penalty"`
	SeasonalStates   []string           `json:"seasonal_states"`
	SeasonalityBonus float64            `json:"seasonality_bonus"`
	CashFlowTiers    []ScoreTier        `json:"cash_flow_tiers"`
	NegativeCashFlowPenalty float64     `json:"negative_cash_flow_penalty"`
	CoCTiers         []ScoreTier        `json:"coc_tiers"`
}

type MTRConfig struct {
	FurnishedPremium    float64     `json:"furnished_premium"`
	AvgStayMonths       float64     `json:"avg_stay_months"`
	VacancyGapMonths    float64     `json:"vacancy_gap_months"`
	MonthlyUtilities    float64     `json:"monthly_utilities"`
	FurnitureCost       float64     `json:"furniture_cost"`
	FurnitureAmortMonths float64    `json:"furniture_amort_months"`
	ManagementPct       float64     `json:"management_pct"`
	RentPriceRatio      float64     `json:"rent_price_ratio"`
	CashFlowTiers       []ScoreTier `json:"cash_flow_tiers"`
	NegativeCashFlowPenalty float64 `json:"negative_cash_flow_penalty"`
	StabilityStayMonths float64     `json:"stability_stay_months"`
	StabilityStayBonus  float64     `json:"stability_stay_bonus"`
	StabilityMaxTurns   float64     `json:"stability_max_turns"`
	StabilityTurnBonus  float64     `json:"stability_turn_bonus"`
	AdvantageTiers      []ScoreTier `json:"advantage_tiers"`
}

type LTRConfig struct {
	VacancyRate     float64     `json:"vacancy_rate"`
	MaintenancePct  float64     `json:"maintenance_pct"`
	CapExPct        float64     `json:"capex_pct"`
	ManagementPct   float64     `json:"management_pct"`
	AnnualTaxRate   float64     `json:"annual_tax_rate"`
	AnnualInsuranceRate float64 `json:"annual_insurance_rate"`
	LTV             float64     `json:"ltv"`
	InterestRate    float64     `json:"interest_rate"`
	TermYears       int         `json:"term_years"`
	RentPriceRatio  float64     `json:"rent_price_ratio"`
	ClosingCostPct  float64     `json:"closing_cost_pct"`
	CashFlowTiers   []ScoreTier `json:"cash_flow_tiers"`
	NegativeCashFlowPenalty float64 `json:"negative_cash_flow_penalty"`
	DSCRTiers       []ScoreTier `json:"dscr_tiers"`
	CoCTiers        []ScoreTier `json:"coc_tiers"`
}

type CreativeConfig struct {
	Sub2EquityMin    float64 `json:"sub2_equity_min"`
	Sub2EquityMax    float64 `json:"sub2_equity_max"`
	MinMonthlyCashFlow float64 `json:"min_monthly_cash_flow"`
	UnderlyingRate   float64 `json:"underlying_rate"`
	UnderlyingTermYears int  `json:"underlying_term_years"`
	WrapRate         float64 `json:"wrap_rate"`
	WrapMarkupPct    float64 `json:"wrap_markup_pct"`
	MinWrapSpread    float64 `json:"min_wrap_spread"`
	CarryDownPct     float64 `json:"carry_down_pct"`
	CarryRate        float64 `json:"carry_rate"`
	CarryTermYears   int     `json:"carry_term_years"`
	CarryEquityMin   float64 `json:"carry_equity_min"`
	LeasePctToSeller float64 `json:"lease_pct_to_seller"`
	MinLeaseSpread   float64 `json:"min_lease_spread"`
	OptionFeePct     float64 `json:"option_fee_pct"`
	RentPriceRatio   float64 `json:"rent_price_ratio"`
	HybridBonus      float64 `json:"hybrid_bonus"`
	CashFlowTiers    []ScoreTier `json:"cash_flow_tiers"`
}

type VerdictConfig struct {
	BaseDealScore float64 `json:"base_deal_score"`
	// MarginTiers bucket flip profit margin into deal score points.
	MarginTiers           []ScoreTier        `json:"margin_tiers"`
	NegativeMarginPenalty float64            `json:"negative_margin_penalty"`
	MarketContributionCap float64            `json:"market_contribution_cap"`
	MotivationKeywords    map[string]float64 `json:"motivation_keywords"`
	MotivationMin         float64            `json:"motivation_min"`
	MotivationMax         float64            `json:"motivation_max"`
	QualityMin            float64            `json:"quality_min"`
	QualityMax            float64            `json:"quality_max"`
	SLAOnTimeBonus        float64            `json:"sla_ontime_bonus"`
	SLASlowPenalty        float64            `json:"sla_slow_penalty"`
	SLABreachPenalty      float64            `json:"sla_breach_penalty"`
	BestStrategyBonus     float64            `json:"best_strategy_bonus"`

	BaseRiskScore    float64                           `json:"base_risk_score"`
	ExitRiskAdj      map[models.ExitRiskTier]float64   `json:"exit_risk_adj"`
	RepairRiskWeight float64                           `json:"repair_risk_weight"`
	SaturationRiskAdj map[models.SaturationTier]float64 `json:"saturation_risk_adj"`
	TypeRiskAdj      map[models.PropertyType]float64   `json:"type_risk_adj"`
	ConfidenceRiskAdj map[models.CompConfidence]float64 `json:"confidence_risk_adj"`

	RiskWeight    float64 `json:"risk_weight"`
	HotThreshold  float64 `json:"hot_threshold"`
	SolidThreshold float64 `json:"solid_threshold"`
	HoldThreshold float64 `json:"hold_threshold"`

	HighRiskThreshold float64 `json:"high_risk_threshold"`
	HighRiskScore     float64 `json:"high_risk_score"`
	SLABreachScore    float64 `json:"sla_breach_score"`
	NoEquityScore     float64 `json:"no_equity_score"`
}

type MatchWeights struct {
	Zip         float64 `json:"zip"`
	Strategy    float64 `json:"strategy"`
	Price       float64 `json:"price"`
	ExitSpeed   float64 `json:"exit_speed"`
	History     float64 `json:"history"`
	Reliability float64 `json:"reliability"`
}

type MatchingConfig struct {
	Weights           MatchWeights `json:"weights"`
	MinScore          float64      `json:"min_score"`
	MaxMatches        int          `json:"max_matches"`
	PriceTolerancePct float64      `json:"price_tolerance_pct"`
	SweetSpotLow      float64      `json:"sweet_spot_low"`
	SweetSpotHigh     float64      `json:"sweet_spot_high"`
	BandLow           float64      `json:"band_low"`
	BandHigh          float64      `json:"band_high"`
}

// DefaultScoringConfig returns the compiled-in constant table. Components
// fall back to these values whenever the overlay file is absent or partial.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Repair: RepairConfig{
			CostPerSqft: map[models.RepairTier]CostRange{
				models.RepairCosmetic: {Low: 5, High: 15},
				models.RepairModerate: {Low: 15, High: 35},
				models.RepairHeavy:    {Low: 35, High: 60},
				models.RepairFullGut:  {Low: 60, High: 100},
				models.RepairTeardown: {Low: 100, High: 150},
			},
			CategoryBase: map[string]float64{
				models.CategoryRoof:        12000,
				models.CategoryHVAC:        8000,
				models.CategoryPlumbing:    9000,
				models.CategoryElectrical:  8500,
				models.CategoryFoundation:  15000,
				models.CategoryKitchen:     18000,
				models.CategoryBaths:       12000,
				models.CategoryFlooring:    7000,
				models.CategoryPaint:       4500,
				models.CategoryOpenings:    10000,
				models.CategoryExterior:    6000,
				models.CategoryLandscaping: 2500,
			},
			TierFactor: map[models.RepairTier]float64{
				models.RepairCosmetic: 0.4,
				models.RepairModerate: 0.7,
				models.RepairHeavy:    1.0,
				models.RepairFullGut:  1.35,
				models.RepairTeardown: 1.75,
			},
			ContingencyPct: 0.10,
			BaseRisk: map[models.RepairTier]float64{
				models.RepairCosmetic: 10,
				models.RepairModerate: 30,
				models.RepairHeavy:    50,
				models.RepairFullGut:  75,
				models.RepairTeardown: 90,
			},
			AgeCosmeticMax: 25,
			AgeModerateMax: 40,
			AgeHeavyMax:    60,
			OldAgeRiskAdj:  10,
			NewAgeRiskAdj:  -10,
			PropertyRiskAdj: map[models.PropertyType]float64{
				models.PropertyMobileHome:  15,
				models.PropertyMultiFamily: 5,
				models.PropertyCondo:       -5,
			},
		},
		Market: MarketConfig{
			VelocityBands: []VelocityBand{
				{MaxDOM: 14, Tier: models.VelocityFast, Score: 90},
				{MaxDOM: 45, Tier: models.VelocityModerate, Score: 70},
				{MaxDOM: 90, Tier: models.VelocitySlow, Score: 40},
				{MaxDOM: 0, Tier: models.VelocityStale, Score: 20},
			},
			StateHotBonus:    10,
			StateColdPenalty: 10,
			HotStates:        hotMarketStates,
			ColdStates:       coldMarketStates,

			ExitRiskBase:     30,
			SlowVelocityAdj:  20,
			StaleVelocityAdj: 35,
			ARVRiskTiers: []ScoreTier{
				{Min: 750000, Points: 20},
				{Min: 500000, Points: 15},
				{Min: 300000, Points: 10},
				{Min: 100000, Points: 5},
			},
			LowARVRiskAdj: 10,
			RepairRiskAdj: map[models.RepairTier]float64{
				models.RepairHeavy:    10,
				models.RepairFullGut:  20,
				models.RepairTeardown: 30,
			},
			TypeRiskAdj: map[models.PropertyType]float64{
				models.PropertySingleFamily: 5,
				models.PropertyTownhouse:    5,
				models.PropertyMultiFamily:  5,
				models.PropertyCondo:        10,
				models.PropertyLand:         15,
				models.PropertyMobileHome:   20,
			},
			ExitLowMax:      30,
			ExitModerateMax: 50,
			ExitHighMax:     70,
			MAOMultiplier: map[models.ExitRiskTier]float64{
				models.ExitRiskLow:      1.00,
				models.ExitRiskModerate: 0.95,
				models.ExitRiskHigh:     0.90,
				models.ExitRiskCritical: 0.85,
			},

			SaturationBase:     50,
			StateSaturationAdj: 15,
			SaturatedStates:    saturatedMarketStates,
			OpenStates:         openMarketStates,
			PriceUnder200K:     5,
			PriceUnder150K:     10,
			PriceUnder100K:     20,
			SaturationLowMax:      35,
			SaturationModerateMax: 55,
			SaturationHighMax:     75,
			VerdictBoost: map[models.SaturationTier]float64{
				models.SaturationLow:       5,
				models.SaturationModerate:  0,
				models.SaturationHigh:      -5,
				models.SaturationSaturated: -15,
			},

			HeatVelocityWeight:   0.5,
			HeatSaturationWeight: 0.3,
			HeatFastDOM:          10,
			HeatFastBonus:        10,
			HeatStaleDOM:         120,
			HeatStalePenalty:     10,
		},
		Flip: FlipConfig{
			MAORulePct:         0.70,
			MonthlyHoldingRate: 0.01,
			AgentFeePct:        0.06,
			ClosingCostPct:     0.03,
			HoldingBands: []HoldingBand{
				{MaxDOM: 14, Months: 3},
				{MaxDOM: 45, Months: 4},
				{MaxDOM: 90, Months: 6},
			},
			FallbackHoldingMonths: 8,
			ProfitTiers: []ScoreTier{
				{Min: 50000, Points: 30},
				{Min: 35000, Points: 25},
				{Min: 20000, Points: 20},
				{Min: 10000, Points: 10},
				{Min: 0, Points: 0},
			},
			NegativeProfitPenalty: -20,
			ROITiers: []ScoreTier{
				{Min: 0.30, Points: 20},
				{Min: 0.20, Points: 15},
				{Min: 0.10, Points: 10},
				{Min: 0, Points: 5},
			},
			ExitRiskDivisor: 5,
		},
		STR: STRConfig{
			BaseADR: 120,
			BedFactors: map[int]float64{
				0: 0.7, 1: 0.8, 2: 1.0, 3: 1.2, 4: 1.4,
			},
			MaxBedFactor: 1.55,
			StateADRMult: stateADRMultipliers,
			TypeADRMult: map[models.PropertyType]float64{
				models.PropertySingleFamily: 1.0,
				models.PropertyTownhouse:    0.95,
				models.PropertyCondo:        0.95,
				models.PropertyMultiFamily:  0.90,
				models.PropertyMobileHome:   0.70,
			},
			Occupancy:       0.65,
			PlatformFeePct:  0.03,
			ManagementPct:   0.20,
			CleaningPerTurn: 90,
			AvgStayNights:   3,
			FurnishingCost:  12000,
			DownPaymentPct:  0.25,
			HighRegulationStates:      highSTRRegulationStates,
			ModerateRegulationStates:  moderateSTRRegulationStates,
			HighRegulationPenalty:     25,
			ModerateRegulationPenalty: 10,
			SeasonalStates:   seasonalSTRStates,
			SeasonalityBonus: 5,
			CashFlowTiers: []ScoreTier{
				{Min: 2000, Points: 25},
				{Min: 1200, Points: 18},
				{Min: 600, Points: 10},
				{Min: 0.01, Points: 3},
			},
			NegativeCashFlowPenalty: -20,
			CoCTiers: []ScoreTier{
				{Min: 0.15, Points: 15},
				{Min: 0.10, Points: 10},
				{Min: 0.06, Points: 5},
			},
		},
		MTR: MTRConfig{
			FurnishedPremium:     1.35,
			AvgStayMonths:        3,
			VacancyGapMonths:     0.5,
			MonthlyUtilities:     250,
			FurnitureCost:        10000,
			FurnitureAmortMonths: 36,
			ManagementPct:        0.10,
			RentPriceRatio:       0.008,
			CashFlowTiers: []ScoreTier{
				{Min: 1200, Points: 25},
				{Min: 700, Points: 18},
				{Min: 300, Points: 10},
				{Min: 0.01, Points: 3},
			},
			NegativeCashFlowPenalty: -20,
			StabilityStayMonths:     3,
			StabilityStayBonus:      8,
			StabilityMaxTurns:       4,
			StabilityTurnBonus:      4,
			AdvantageTiers: []ScoreTier{
				{Min: 500, Points: 10},
				{Min: 200, Points: 5},
			},
		},
		LTR: LTRConfig{
			VacancyRate:         0.08,
			MaintenancePct:      0.08,
			CapExPct:            0.05,
			ManagementPct:       0.08,
			AnnualTaxRate:       0.011,
			AnnualInsuranceRate: 0.0045,
			LTV:                 0.75,
			InterestRate:        0.07,
			TermYears:           30,
			RentPriceRatio:      0.008,
			ClosingCostPct:      0.03,
			CashFlowTiers: []ScoreTier{
				{Min: 400, Points: 20},
				{Min: 200, Points: 12},
				{Min: 100, Points: 6},
				{Min: 0.01, Points: 2},
			},
			NegativeCashFlowPenalty: -15,
			DSCRTiers: []ScoreTier{
				{Min: 1.5, Points: 15},
				{Min: 1.25, Points: 10},
				{Min: 1.1, Points: 5},
			},
			CoCTiers: []ScoreTier{
				{Min: 0.08, Points: 10},
				{Min: 0.05, Points: 5},
			},
		},
		Creative: CreativeConfig{
			Sub2EquityMin:       0.10,
			Sub2EquityMax:       0.50,
			MinMonthlyCashFlow:  100,
			UnderlyingRate:      0.065,
			UnderlyingTermYears: 30,
			WrapRate:            0.095,
			WrapMarkupPct:       0.10,
			MinWrapSpread:       150,
			CarryDownPct:        0.10,
			CarryRate:           0.06,
			CarryTermYears:      30,
			CarryEquityMin:      0.70,
			LeasePctToSeller:    0.85,
			MinLeaseSpread:      150,
			OptionFeePct:        0.03,
			RentPriceRatio:      0.008,
			HybridBonus:         10,
			CashFlowTiers: []ScoreTier{
				{Min: 500, Points: 25},
				{Min: 300, Points: 18},
				{Min: 150, Points: 10},
				{Min: 100, Points: 5},
			},
		},
		Verdict: VerdictConfig{
			BaseDealScore: 50,
			MarginTiers: []ScoreTier{
				{Min: 0.25, Points: 25},
				{Min: 0.15, Points: 20},
				{Min: 0.08, Points: 12},
				{Min: 0.03, Points: 5},
				{Min: 0, Points: 0},
			},
			NegativeMarginPenalty: -10,
			MarketContributionCap: 15,
			MotivationKeywords:    motivationKeywordWeights,
			MotivationMin:         -5,
			MotivationMax:         15,
			QualityMin:            -5,
			QualityMax:            10,
			SLAOnTimeBonus:        15,
			SLASlowPenalty:        5,
			SLABreachPenalty:      15,
			BestStrategyBonus:     5,

			BaseRiskScore: 30,
			ExitRiskAdj: map[models.ExitRiskTier]float64{
				models.ExitRiskLow:      -5,
				models.ExitRiskModerate: 5,
				models.ExitRiskHigh:     15,
				models.ExitRiskCritical: 25,
			},
			RepairRiskWeight: 0.2,
			SaturationRiskAdj: map[models.SaturationTier]float64{
				models.SaturationLow:       -5,
				models.SaturationModerate:  0,
				models.SaturationHigh:      5,
				models.SaturationSaturated: 15,
			},
			TypeRiskAdj: map[models.PropertyType]float64{
				models.PropertyMobileHome:  10,
				models.PropertyLand:        8,
				models.PropertyCondo:       4,
				models.PropertyMultiFamily: 3,
			},
			ConfidenceRiskAdj: map[models.CompConfidence]float64{
				models.CompConfidenceHigh:   0,
				models.CompConfidenceMedium: 5,
				models.CompConfidenceLow:    10,
			},

			RiskWeight:     0.3,
			HotThreshold:   80,
			SolidThreshold: 60,
			HoldThreshold:  40,

			HighRiskThreshold: 75,
			HighRiskScore:     55,
			SLABreachScore:    65,
			NoEquityScore:     25,
		},
		Matching: MatchingConfig{
			Weights: MatchWeights{
				Zip:         0.25,
				Strategy:    0.30,
				Price:       0.20,
				ExitSpeed:   0.15,
				History:     0.05,
				Reliability: 0.05,
			},
			MinScore:          70,
			MaxMatches:        10,
			PriceTolerancePct: 0.10,
			SweetSpotLow:      0.4,
			SweetSpotHigh:     0.7,
			BandLow:           0.2,
			BandHigh:          0.9,
		},
	}
}
