package config

// Curated state-level market lists. These seed DefaultScoringConfig and can
// be replaced wholesale through the scoring overlay file.

// hotMarketStates get a sales-velocity bonus.
var hotMarketStates = []string{"TX", "FL", "AZ", "NC", "TN", "GA", "SC"}

// coldMarketStates get a sales-velocity penalty.
var coldMarketStates = []string{"IL", "NY", "NJ", "CT", "LA", "WV"}

// saturatedMarketStates carry heavy investor competition.
var saturatedMarketStates = []string{"AZ", "NV", "FL", "TX"}

// openMarketStates have comparatively little investor competition.
var openMarketStates = []string{"OH", "IN", "MO", "AL", "KS", "OK"}

// highSTRRegulationStates restrict or license short-term rentals aggressively.
var highSTRRegulationStates = []string{"NY", "CA", "HI"}

// moderateSTRRegulationStates have meaningful but workable STR rules.
var moderateSTRRegulationStates = []string{"CO", "WA", "MA", "OR"}

// seasonalSTRStates see strong vacation demand peaks.
var seasonalSTRStates = []string{"FL", "TN", "AZ", "CO", "SC", "HI"}

// stateADRMultipliers scale the base nightly rate by state demand. States not
// listed use 1.0.
var stateADRMultipliers = map[string]float64{
	"HI": 1.6,
	"CA": 1.35,
	"FL": 1.25,
	"CO": 1.2,
	"TN": 1.2,
	"AZ": 1.1,
	"SC": 1.1,
	"NY": 1.3,
	"OH": 0.85,
	"IN": 0.85,
	"OK": 0.8,
}

// motivationKeywordWeights score seller-motivation phrases found in the
// lead's free text. Negative weights flag unmotivated sellers.
var motivationKeywordWeights = map[string]float64{
	"foreclosure":        5,
	"pre-foreclosure":    5,
	"behind on payments": 5,
	"divorce":            4,
	"probate":            4,
	"inherited":          4,
	"tired landlord":     4,
	"relocat":            3,
	"vacant":             3,
	"motivated":          3,
	"must sell":          3,
	"as-is":              2,
	"cash":               1,
	"not in a hurry":     -3,
	"testing the market": -5,
}
