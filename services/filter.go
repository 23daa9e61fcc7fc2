package services

import (
	"strings"

	"hotel-booking/models"
)

// RoomTypes are the categories offered by the room type filter.
var RoomTypes = []string{"Single Bed", "Double Bed", "Luxury Bed", "Family Suite"}

// RatingThresholds are the minimum ratings offered by the review filter.
var RatingThresholds = []float64{0, 4, 4.5, 5}

// FilterSpec is a snapshot of the active facet selections.
// An empty selection, query or zero threshold leaves its facet inactive.
type FilterSpec struct {
	TextQuery    string  `json:"textQuery"`
	Categories   Set     `json:"categories"`
	Buckets      Set     `json:"buckets"`
	MinThreshold float64 `json:"minThreshold"`
}

// IsZero reports whether no facet is active.
func (f FilterSpec) IsZero() bool {
	return f.TextQuery == "" && f.Categories.IsEmpty() && f.Buckets.IsEmpty() && f.MinThreshold == 0
}

// Facets describes how a record type exposes each filtering dimension.
// A nil accessor means the record type has no such dimension and the facet always passes.
type Facets[T any] struct {
	Text      func(T) []string
	Category  func(T) string
	Numeric   func(T) float64
	Threshold func(T) float64
}

// RoomFacets drives the room listing: type checkboxes, price buckets, price sort.
var RoomFacets = Facets[*models.Room]{
	Text: func(r *models.Room) []string {
		return []string{r.Hotel.Name, r.Hotel.City, r.Hotel.Address, r.RoomType}
	},
	Category: func(r *models.Room) string { return r.RoomType },
	Numeric:  func(r *models.Room) float64 { return r.PricePerNight },
}

// ReviewFacets drives the experiences board: free text and minimum rating.
var ReviewFacets = Facets[*models.Review]{
	Text: func(r *models.Review) []string {
		return []string{r.Guest, r.Title, r.Text}
	},
	Threshold: func(r *models.Review) float64 { return r.Rating },
}

// Matches reports whether a single record passes every active facet of spec.
func Matches[T any](record T, spec FilterSpec, facets Facets[T]) bool {
	return compile(spec, facets)(record)
}

// compile resolves spec once (lower-cased query, parsed buckets) into a predicate.
// Unparseable bucket labels are skipped, so a selection made only of bad labels matches nothing.
func compile[T any](spec FilterSpec, facets Facets[T]) func(T) bool {
	query := strings.ToLower(spec.TextQuery)

	bucketsActive := !spec.Buckets.IsEmpty() && facets.Numeric != nil
	var ranges []PriceRange
	if bucketsActive {
		for _, label := range spec.Buckets.values {
			if r, ok := ParseBucket(label); ok {
				ranges = append(ranges, r)
			}
		}
	}

	return func(record T) bool {
		if query != "" && facets.Text != nil {
			haystack := strings.ToLower(strings.Join(facets.Text(record), " "))
			if !strings.Contains(haystack, query) {
				return false
			}
		}

		if !spec.Categories.IsEmpty() && facets.Category != nil {
			if !spec.Categories.Has(facets.Category(record)) {
				return false
			}
		}

		if bucketsActive && !inAnyRange(facets.Numeric(record), ranges) {
			return false
		}

		if facets.Threshold != nil && facets.Threshold(record) < spec.MinThreshold {
			return false
		}

		return true
	}
}

func inAnyRange(v float64, ranges []PriceRange) bool {
	for _, r := range ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// MalformedBuckets lists the selected labels that ParseBucket rejects.
func (f FilterSpec) MalformedBuckets() []string {
	var bad []string
	for _, label := range f.Buckets.values {
		if _, ok := ParseBucket(label); !ok {
			bad = append(bad, label)
		}
	}
	return bad
}
