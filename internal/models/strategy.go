package models

// Strategy identifies one of the five exit strategies.
type Strategy string

const (
	StrategyFlip     Strategy = "flip"
	StrategySTR      Strategy = "str"
	StrategyMTR      Strategy = "mtr"
	StrategyLTR      Strategy = "ltr"
	StrategyCreative Strategy = "creative"
)

func (s Strategy) String() string {
	return string(s)
}

// Strategy verdict labels shared by all five engines.
const (
	StrategyStrongBuy = "Strong Buy"
	StrategyBuy       = "Buy"
	StrategyConsider  = "Consider"
	StrategyWeak      = "Weak"
	StrategyAvoid     = "Avoid"
)

// FlipProjection holds the fix-and-flip financial model.
type FlipProjection struct {
	HoldingMonths float64 `json:"holding_months"`
	HoldingCost   float64 `json:"holding_cost"`
	AgentFees     float64 `json:"agent_fees"`
	ClosingCosts  float64 `json:"closing_costs"`
	RehabCost     float64 `json:"rehab_cost"`
	TotalInvested float64 `json:"total_invested"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profit_margin"`
	ROI           float64 `json:"roi"`
	MaxOffer      float64 `json:"max_offer"`
}

// RentalProjection holds the cash-flow model shared by STR, MTR and LTR.
// Fields that do not apply to a given strategy are left zero.
type RentalProjection struct {
	MonthlyGross    float64 `json:"monthly_gross"`
	MonthlyNet      float64 `json:"monthly_net"`
	AnnualNet       float64 `json:"annual_net"`
	NOI             float64 `json:"noi"`
	DebtService     float64 `json:"debt_service"`
	DSCR            float64 `json:"dscr"`
	CashOnCash      float64 `json:"cash_on_cash"`
	CashInvested    float64 `json:"cash_invested"`
	ADR             float64 `json:"adr,omitempty"`
	Occupancy       float64 `json:"occupancy,omitempty"`
	TurnsPerYear    float64 `json:"turns_per_year,omitempty"`
	LTREquivalent   float64 `json:"ltr_equivalent,omitempty"`
	HoldQualityScore float64 `json:"hold_quality_score,omitempty"`
}

// CreativeStructure identifies one creative-finance sub-structure.
type CreativeStructure string

const (
	CreativeSubjectTo   CreativeStructure = "subject_to"
	CreativeWrap        CreativeStructure = "wrap"
	CreativeSellerCarry CreativeStructure = "seller_carry"
	CreativeLeaseOption CreativeStructure = "lease_option"
	CreativeHybrid      CreativeStructure = "hybrid"
)

// StructureEvaluation is the outcome of one creative sub-structure's
// viability gate and scoring.
type StructureEvaluation struct {
	Structure       CreativeStructure `json:"structure"`
	Viable          bool              `json:"viable"`
	Score           float64           `json:"score"`
	MonthlyCashFlow float64           `json:"monthly_cash_flow"`
	Terms           string            `json:"terms,omitempty"`
	Reason          string            `json:"reason,omitempty"`
}

// CreativeProjection holds all sub-structure evaluations plus the chosen one.
type CreativeProjection struct {
	Structures []StructureEvaluation `json:"structures"`
	Best       CreativeStructure     `json:"best,omitempty"`
	EquityPct  float64               `json:"equity_pct"`
}

// StrategyResult is one engine's output for one deal. Immutable once
// produced for a given input snapshot.
type StrategyResult struct {
	ID       uint     `json:"-" gorm:"primaryKey;autoIncrement"`
	DealID   string   `json:"deal_id" gorm:"index"`
	Strategy Strategy `json:"strategy"`
	Score    float64  `json:"score"`
	Verdict  string   `json:"verdict"`

	Flip     *FlipProjection     `json:"flip,omitempty" gorm:"serializer:json"`
	Rental   *RentalProjection   `json:"rental,omitempty" gorm:"serializer:json"`
	Creative *CreativeProjection `json:"creative,omitempty" gorm:"serializer:json"`
}

// Verdict is the top-level call on a deal.
type Verdict string

const (
	VerdictHot   Verdict = "HOT"
	VerdictSolid Verdict = "SOLID"
	VerdictHold  Verdict = "HOLD"
	VerdictPass  Verdict = "PASS"
)

// NextAction tells the acquisitions team what to do with the deal.
type NextAction string

const (
	ActionCallNow        NextAction = "Call now"
	ActionCallNowSLA     NextAction = "Call now - SLA at risk"
	ActionFollowUpToday  NextAction = "Follow up today"
	ActionPriorityFollow NextAction = "Priority follow-up - SLA at risk"
	ActionNurture        NextAction = "Nurture"
	ActionArchive        NextAction = "Archive"
)

// VerdictRecord is the verdict engine's composite output for one deal.
// Recomputed wholesale on every pipeline run, never patched incrementally.
type VerdictRecord struct {
	DealID          string     `json:"deal_id" gorm:"primaryKey"`
	DealScore       float64    `json:"deal_score"`
	RiskScore       float64    `json:"risk_score"`
	Verdict         Verdict    `json:"verdict"`
	OverrideReason  string     `json:"override_reason,omitempty"`
	NextAction      NextAction `json:"next_action"`
	BestStrategy    Strategy   `json:"best_strategy,omitempty"`
	StrategySummary string     `json:"strategy_summary"`
	Rank            int        `json:"rank"`
}
