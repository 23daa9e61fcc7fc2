package services

import (
	"math"
	"strconv"
	"strings"
)

// bucketSeparator splits a label such as "$ 500 to 1000" into its two bounds.
const bucketSeparator = "to"

var currencySymbols = []string{"$", "€", "£", "₹"}

// PriceBuckets are the price range labels offered by the room listing.
var PriceBuckets = []string{"0 to 500", "500 to 1000", "1000 to 2000", "2000 to 3000"}

// PriceRange is a closed numeric interval [Min, Max].
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range, bounds included.
func (r PriceRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ParseBucket turns a human-readable label into a PriceRange.
// Examples:
//
//	"0 to 500"      → [0, 500]
//	"$ 1000 to 2000" → [1000, 2000]
//	"$1,000 to 2,000" → [1000, 2000]
//
// Any malformed label reports false; callers treat that as "matches nothing".
func ParseBucket(label string) (PriceRange, bool) {
	s := strings.TrimSpace(label)
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")

	parts := strings.Split(s, bucketSeparator)
	if len(parts) != 2 {
		return PriceRange{}, false
	}

	lo, ok := parseBound(parts[0])
	if !ok {
		return PriceRange{}, false
	}
	hi, ok := parseBound(parts[1])
	if !ok {
		return PriceRange{}, false
	}
	if lo > hi {
		return PriceRange{}, false
	}
	return PriceRange{Min: lo, Max: hi}, true
}

func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// BucketLabel renders a bucket the way the room filter panel shows it.
func BucketLabel(bucket string) string {
	return "$ " + bucket
}
