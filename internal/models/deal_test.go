package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDeal_RequiresID(t *testing.T) {
	deal, err := NewDeal("")
	assert.Nil(t, deal)
	assert.Equal(t, ErrMissingDealID, err)

	deal, err = NewDeal("deal-1")
	assert.NoError(t, err)
	assert.Equal(t, DefaultSqft, deal.Sqft)
	assert.Equal(t, DefaultYearBuilt, deal.YearBuilt)
	assert.Equal(t, DefaultDaysOnMarket, deal.DaysOnMarket)
	assert.Equal(t, PropertySingleFamily, deal.PropertyType)
}

func TestNormalize_FillsDefaults(t *testing.T) {
	deal := &Deal{ID: "deal-1", Sqft: -10}
	assert.NoError(t, deal.Normalize())
	assert.Equal(t, DefaultSqft, deal.Sqft)
	assert.Equal(t, DefaultYearBuilt, deal.YearBuilt)
	assert.Equal(t, DefaultDaysOnMarket, deal.DaysOnMarket)

	// Present values are left alone.
	filled := &Deal{ID: "deal-2", Sqft: 2200, YearBuilt: 2001, DaysOnMarket: 7, PropertyType: PropertyCondo}
	assert.NoError(t, filled.Normalize())
	assert.Equal(t, 2200, filled.Sqft)
	assert.Equal(t, PropertyCondo, filled.PropertyType)

	missing := &Deal{}
	assert.Equal(t, ErrMissingDealID, missing.Normalize())
}

func TestAge_NeverNegative(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	deal := &Deal{YearBuilt: 1990}
	assert.Equal(t, 36, deal.Age(now))

	future := &Deal{YearBuilt: 2030}
	assert.Equal(t, 0, future.Age(now))
}

func TestZIPPrefix(t *testing.T) {
	assert.Equal(t, "750", (&Deal{ZIP: "75001"}).ZIPPrefix())
	assert.Equal(t, "750", (&Deal{ZIP: "750"}).ZIPPrefix())
	assert.Equal(t, "", (&Deal{ZIP: "75"}).ZIPPrefix())
	assert.Equal(t, "", (&Deal{}).ZIPPrefix())
}

func TestRepairTierOrder(t *testing.T) {
	assert.Less(t, RepairCosmetic.Order(), RepairModerate.Order())
	assert.Less(t, RepairHeavy.Order(), RepairFullGut.Order())
	assert.Less(t, RepairFullGut.Order(), RepairTeardown.Order())
	// Unknown tiers rank as moderate.
	assert.Equal(t, RepairModerate.Order(), RepairTier("bogus").Order())
}
