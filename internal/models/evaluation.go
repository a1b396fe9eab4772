package models

// DealEvaluation bundles everything the pipeline produced for one deal.
type DealEvaluation struct {
	Deal       Deal             `json:"deal"`
	Repair     RepairAssessment `json:"repair"`
	Market     MarketSignal     `json:"market"`
	Strategies []StrategyResult `json:"strategies"`
	Verdict    VerdictRecord    `json:"verdict"`
	Matches    []MatchResult    `json:"matches"`
}

// EvaluationBatch is one chunk of pipeline output flowing through the result
// queue to the store writer. Replace marks the first chunk of a run; the
// writer clears the previous run's results before applying it.
type EvaluationBatch struct {
	RunID       string
	Replace     bool
	Evaluations []DealEvaluation
}
