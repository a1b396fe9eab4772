package market

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// zipCache memoizes ZIP-level market adjustments for the configured TTL.
// Staleness is tolerated: a stale hit only delays picking up newer ZIP data,
// it never affects correctness within a run.
type zipCache struct {
	cache *gocache.Cache
}

func newZIPCache(ttl time.Duration) *zipCache {
	return &zipCache{cache: gocache.New(ttl, 2*ttl)}
}

func (z *zipCache) velocityBonus(zip string) float64 {
	key := "velocity:" + zip
	if v, ok := z.cache.Get(key); ok {
		return v.(float64)
	}
	bonus := zipVelocityBonus(zip)
	z.cache.Set(key, bonus, gocache.DefaultExpiration)
	return bonus
}

func (z *zipCache) saturationAdj(zip string) float64 {
	key := "saturation:" + zip
	if v, ok := z.cache.Get(key); ok {
		return v.(float64)
	}
	adj := zipSaturationAdj(zip)
	z.cache.Set(key, adj, gocache.DefaultExpiration)
	return adj
}

// zipVelocityBonus derives a small deterministic adjustment from the ZIP's
// delivery-route digits, standing in for a live ZIP velocity feed. Keeping it
// deterministic keeps pipeline runs replayable.
func zipVelocityBonus(zip string) float64 {
	n, ok := zipSuffix(zip)
	if !ok {
		return 0
	}
	switch n % 3 {
	case 0:
		return 5
	case 1:
		return 0
	default:
		return -5
	}
}

func zipSaturationAdj(zip string) float64 {
	n, ok := zipSuffix(zip)
	if !ok {
		return 0
	}
	return float64(n%5-2) * 2
}

func zipSuffix(zip string) (int, bool) {
	if len(zip) < 5 {
		return 0, false
	}
	n, err := strconv.Atoi(zip[3:5])
	if err != nil {
		return 0, false
	}
	return n, true
}
