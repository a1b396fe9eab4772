package strategy

import (
	"fmt"
	"sort"
	"strings"

	"dealscope/server/internal/models"
)

// Comparison ranks the five strategy results for one deal.
type Comparison struct {
	DealID string `json:"deal_id"`
	// Ranked holds all results, best first. Ties keep engine declaration
	// order (flip > str > mtr > ltr > creative).
	Ranked    []models.StrategyResult `json:"ranked"`
	Best      *models.StrategyResult  `json:"best,omitempty"`
	Rationale string                  `json:"rationale"`
	// Summary is a compact "name:score" line for all five strategies.
	Summary string `json:"summary"`
}

// Compare sorts the results by score descending (stable, so ties keep the
// engine declaration order) and selects the best fit.
func Compare(dealID string, results []models.StrategyResult) Comparison {
	ranked := make([]models.StrategyResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	cmp := Comparison{
		DealID:  dealID,
		Ranked:  ranked,
		Summary: summarize(ranked),
	}

	if len(ranked) == 0 {
		cmp.Rationale = "no strategy results to compare"
		return cmp
	}

	best := ranked[0]
	cmp.Best = &best
	cmp.Rationale = fmt.Sprintf("%s leads at %.0f (%s)", best.Strategy, best.Score, best.Verdict)
	if len(ranked) > 1 {
		cmp.Rationale += fmt.Sprintf(", ahead of %s at %.0f", ranked[1].Strategy, ranked[1].Score)
	}

	return cmp
}

func summarize(ranked []models.StrategyResult) string {
	parts := make([]string, 0, len(ranked))
	for _, r := range ranked {
		parts = append(parts, fmt.Sprintf("%s:%.0f", r.Strategy, r.Score))
	}
	return strings.Join(parts, " ")
}
