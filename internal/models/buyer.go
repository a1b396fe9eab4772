package models

import "time"

// BuyerStrategy is a buyer's preferred exit strategy. It shares the Strategy
// value space plus "any".
type BuyerStrategy string

const (
	BuyerStrategyFlip     BuyerStrategy = "flip"
	BuyerStrategySTR      BuyerStrategy = "str"
	BuyerStrategyMTR      BuyerStrategy = "mtr"
	BuyerStrategyLTR      BuyerStrategy = "ltr"
	BuyerStrategyCreative BuyerStrategy = "creative"
	BuyerStrategyAny      BuyerStrategy = "any"
)

// RiskTolerance expresses how much deal risk a buyer will stomach.
type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

// ExitSpeed is the buyer's preferred hold horizon, ordered slowest to
// fastest: long_hold < medium < quick_flip.
type ExitSpeed string

const (
	ExitLongHold  ExitSpeed = "long_hold"
	ExitMedium    ExitSpeed = "medium"
	ExitQuickFlip ExitSpeed = "quick_flip"
)

// Order returns the exit speed's position on the ordered scale, or -1 when
// the value is absent or unknown.
func (e ExitSpeed) Order() int {
	switch e {
	case ExitLongHold:
		return 0
	case ExitMedium:
		return 1
	case ExitQuickFlip:
		return 2
	default:
		return -1
	}
}

// Buyer is one capital-ready purchaser from the buyer database.
type Buyer struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	PreferredZIPs     []string       `json:"preferred_zips" gorm:"serializer:json"`
	PreferredCities   []string       `json:"preferred_cities" gorm:"serializer:json"`
	PreferredStrategy BuyerStrategy  `json:"preferred_strategy"`
	PriceMin          float64        `json:"price_min"`
	// PriceMax of 0 means unbounded.
	PriceMax      float64        `json:"price_max"`
	PropertyTypes []PropertyType `json:"property_types" gorm:"serializer:json"`
	RiskTolerance RiskTolerance  `json:"risk_tolerance"`
	ExitSpeed     ExitSpeed      `json:"exit_speed"`

	DealsClosed  int     `json:"deals_closed"`
	AvgCloseDays float64 `json:"avg_close_days"`
	Reliability  float64 `json:"reliability"`
	Active       bool    `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchQuality buckets a buyer match by total score.
type MatchQuality string

const (
	MatchPerfect MatchQuality = "perfect"
	MatchStrong  MatchQuality = "strong"
	MatchGood    MatchQuality = "good"
	MatchWeak    MatchQuality = "weak"
)

// MatchRecommendation is the dispatch decision for a buyer match.
type MatchRecommendation string

const (
	RecommendSendNow  MatchRecommendation = "Send immediately"
	RecommendSend     MatchRecommendation = "Send"
	RecommendMonitor  MatchRecommendation = "Monitor"
	RecommendDontSend MatchRecommendation = "Don't send"
)

// MatchResult scores one buyer against one deal. Created fresh per matching
// run and never merged with prior runs.
type MatchResult struct {
	ID      string `json:"id" gorm:"primaryKey"`
	DealID  string `json:"deal_id" gorm:"index"`
	BuyerID string `json:"buyer_id" gorm:"index"`

	ZipScore       float64 `json:"zip_score"`
	StrategyScore  float64 `json:"strategy_score"`
	PriceScore     float64 `json:"price_score"`
	ExitSpeedScore float64 `json:"exit_speed_score"`
	HistoryScore   float64 `json:"history_score"`
	Reliability    float64 `json:"reliability"`

	TotalScore     float64             `json:"total_score"`
	Quality        MatchQuality        `json:"quality"`
	Rationale      string              `json:"rationale"`
	Recommendation MatchRecommendation `json:"recommendation"`
}
