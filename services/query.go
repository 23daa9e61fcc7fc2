package services

import (
	"cmp"
	"slices"

	"hotel-booking/models"
)

// Engine filters and orders a record collection. It holds no state besides the
// facet description, so one Engine can serve any number of views.
type Engine[T any] struct {
	facets Facets[T]
}

// NewEngine creates an Engine for records described by facets.
func NewEngine[T any](facets Facets[T]) *Engine[T] {
	return &Engine[T]{facets: facets}
}

// View is an ordered query result together with its counts.
type View[T any] struct {
	Records []T
	Count   models.ViewCount
}

// Query filters records by filter, keeping collection order, then orders the result by sort.
// The input slice is never modified; the returned slice is always new.
func (e *Engine[T]) Query(records []T, filter FilterSpec, sort SortSpec) []T {
	keep := compile(filter, e.facets)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}

	e.order(out, sort)
	return out
}

// Count returns how many records pass filter out of the whole collection.
func (e *Engine[T]) Count(records []T, filter FilterSpec) models.ViewCount {
	keep := compile(filter, e.facets)
	n := 0
	for _, r := range records {
		if keep(r) {
			n++
		}
	}
	return models.ViewCount{Filtered: n, Total: len(records)}
}

// View runs Query and reports the counts of the same result.
func (e *Engine[T]) View(records []T, filter FilterSpec, sort SortSpec) View[T] {
	out := e.Query(records, filter, sort)
	return View[T]{
		Records: out,
		Count:   models.ViewCount{Filtered: len(out), Total: len(records)},
	}
}

// order sorts view in place. Ties keep their filtered order.
func (e *Engine[T]) order(view []T, sort SortSpec) {
	num := e.facets.Numeric
	if num == nil {
		return
	}
	switch sort {
	case SortPriceAsc:
		slices.SortStableFunc(view, func(a, b T) int {
			return cmp.Compare(num(a), num(b))
		})
	case SortPriceDesc:
		slices.SortStableFunc(view, func(a, b T) int {
			return cmp.Compare(num(b), num(a))
		})
	}
}
