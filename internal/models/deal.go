package models

import (
	"errors"
	"time"
)

// ErrMissingDealID is returned when a record arrives without an identity.
// Such records are skipped and logged; they are never retried by the core.
var ErrMissingDealID = errors.New("deal is missing an id")

// PropertyType classifies the physical asset.
type PropertyType string

const (
	PropertySingleFamily PropertyType = "single_family"
	PropertyMultiFamily  PropertyType = "multi_family"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhouse    PropertyType = "townhouse"
	PropertyMobileHome   PropertyType = "mobile_home"
	PropertyLand         PropertyType = "land"
)

func (t PropertyType) String() string {
	return string(t)
}

// CompConfidence expresses how trustworthy the ARV estimate is.
type CompConfidence string

const (
	CompConfidenceHigh   CompConfidence = "high"
	CompConfidenceMedium CompConfidence = "medium"
	CompConfidenceLow    CompConfidence = "low"
)

// SLAStatus tracks whether the lead was contacted inside the response window.
// It is written by ingestion; the scoring core only reads it.
type SLAStatus string

const (
	SLAOnTime SLAStatus = "ontime"
	SLASlow   SLAStatus = "slow"
	SLABreach SLAStatus = "breach"
)

// Default values applied to absent numeric fields. Scoring never branches on
// field presence; the constructor bakes these in up front.
const (
	DefaultSqft         = 1500
	DefaultYearBuilt    = 1980
	DefaultDaysOnMarket = 30
)

// Deal is the unit of work: one normalized acquisition lead. Fields are
// written by the stage that owns them and read-only everywhere else.
type Deal struct {
	ID             string       `json:"id" gorm:"primaryKey"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	ZIP            string       `json:"zip"`
	AskingPrice    float64      `json:"asking_price"`
	Beds           int          `json:"beds"`
	Baths          float64      `json:"baths"`
	Sqft           int          `json:"sqft"`
	YearBuilt      int          `json:"year_built"`
	PropertyType   PropertyType `json:"property_type"`
	DaysOnMarket   int          `json:"days_on_market"`
	MotivationText string       `json:"motivation_text"`

	// Derived fields supplied by ingestion/normalization.
	ARV                 float64        `json:"arv"`
	CompConfidence      CompConfidence `json:"comp_confidence"`
	MortgageBalance     float64        `json:"mortgage_balance"`
	MonthlyRentEstimate float64        `json:"monthly_rent_estimate"`
	SLAStatus           SLAStatus      `json:"sla_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDeal builds a deal with the documented neutral defaults applied to
// absent numeric fields. Returns ErrMissingDealID when id is empty.
func NewDeal(id string) (*Deal, error) {
	if id == "" {
		return nil, ErrMissingDealID
	}
	return &Deal{
		ID:           id,
		Sqft:         DefaultSqft,
		YearBuilt:    DefaultYearBuilt,
		DaysOnMarket: DefaultDaysOnMarket,
		PropertyType: PropertySingleFamily,
	}, nil
}

// Normalize fills absent numeric fields with the documented defaults so the
// scoring stages never see a zero sqft or year built.
func (d *Deal) Normalize() error {
	if d.ID == "" {
		return ErrMissingDealID
	}
	if d.Sqft <= 0 {
		d.Sqft = DefaultSqft
	}
	if d.YearBuilt <= 0 {
		d.YearBuilt = DefaultYearBuilt
	}
	if d.DaysOnMarket <= 0 {
		d.DaysOnMarket = DefaultDaysOnMarket
	}
	if d.PropertyType == "" {
		d.PropertyType = PropertySingleFamily
	}
	return nil
}

// Age returns the property age in years at the given evaluation time.
func (d *Deal) Age(now time.Time) int {
	age := now.Year() - d.YearBuilt
	if age < 0 {
		return 0
	}
	return age
}

// ZIPPrefix returns the 3-digit sectional prefix, or "" when the ZIP is
// too short to carry one.
func (d *Deal) ZIPPrefix() string {
	if len(d.ZIP) < 3 {
		return ""
	}
	return d.ZIP[:3]
}
