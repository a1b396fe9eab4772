package models

// RepairTier classifies rehab complexity, lightest to heaviest.
type RepairTier string

const (
	RepairCosmetic RepairTier = "cosmetic"
	RepairModerate RepairTier = "moderate"
	RepairHeavy    RepairTier = "heavy"
	RepairFullGut  RepairTier = "full_gut"
	RepairTeardown RepairTier = "teardown"
)

func (t RepairTier) String() string {
	return string(t)
}

// Order returns the tier's position on the severity scale, Cosmetic=0 through
// Teardown=4. Unknown tiers map to Moderate, the documented neutral default.
func (t RepairTier) Order() int {
	switch t {
	case RepairCosmetic:
		return 0
	case RepairModerate:
		return 1
	case RepairHeavy:
		return 2
	case RepairFullGut:
		return 3
	case RepairTeardown:
		return 4
	default:
		return 1
	}
}

// Repair cost categories. Breakdown maps always carry exactly these keys.
const (
	CategoryRoof        = "roof"
	CategoryHVAC        = "hvac"
	CategoryPlumbing    = "plumbing"
	CategoryElectrical  = "electrical"
	CategoryFoundation  = "foundation"
	CategoryKitchen     = "kitchen"
	CategoryBaths       = "baths"
	CategoryFlooring    = "flooring"
	CategoryPaint       = "paint"
	CategoryOpenings    = "openings"
	CategoryExterior    = "exterior"
	CategoryLandscaping = "landscaping"
	CategoryContingency = "contingency"
)

// RepairAssessment is the repair estimator's output for one deal. Derived
// solely from sqft, year built, property type and free-text signals, so it is
// deterministic given an input snapshot.
type RepairAssessment struct {
	ID        uint               `json:"-" gorm:"primaryKey;autoIncrement"`
	DealID    string             `json:"deal_id" gorm:"index"`
	Tier      RepairTier         `json:"tier"`
	CostLow   float64            `json:"cost_low"`
	CostHigh  float64            `json:"cost_high"`
	CostMid   float64            `json:"cost_mid"`
	Breakdown map[string]float64 `json:"breakdown" gorm:"serializer:json"`
	RiskScore float64            `json:"risk_score"`
}

// VelocityTier buckets how quickly comparable inventory is moving.
type VelocityTier string

const (
	VelocityFast     VelocityTier = "fast"
	VelocityModerate VelocityTier = "moderate"
	VelocitySlow     VelocityTier = "slow"
	VelocityStale    VelocityTier = "stale"
)

// ExitRiskTier buckets the risk of failing to exit the deal.
type ExitRiskTier string

const (
	ExitRiskLow      ExitRiskTier = "low"
	ExitRiskModerate ExitRiskTier = "moderate"
	ExitRiskHigh     ExitRiskTier = "high"
	ExitRiskCritical ExitRiskTier = "critical"
)

// SaturationTier buckets investor competition in the deal's market.
type SaturationTier string

const (
	SaturationLow       SaturationTier = "low"
	SaturationModerate  SaturationTier = "moderate"
	SaturationHigh      SaturationTier = "high"
	SaturationSaturated SaturationTier = "saturated"
)

// MarketSignal is the market intelligence scorer's output for one deal.
type MarketSignal struct {
	ID     uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	DealID string `json:"deal_id" gorm:"index"`

	VelocityScore float64      `json:"velocity_score"`
	VelocityTier  VelocityTier `json:"velocity_tier"`

	ExitRiskScore float64      `json:"exit_risk_score"`
	ExitRiskTier  ExitRiskTier `json:"exit_risk_tier"`
	// MAOMultiplier discounts the maximum allowable offer as exit risk grows.
	MAOMultiplier float64 `json:"mao_multiplier"`

	SaturationScore float64        `json:"saturation_score"`
	SaturationTier  SaturationTier `json:"saturation_tier"`
	// VerdictBoost is consumed by the verdict engine's deal score.
	VerdictBoost float64 `json:"verdict_boost"`

	HeatScore float64 `json:"heat_score"`
}
