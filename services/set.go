package services

import (
	"encoding/json"
	"slices"
)

// Set is an immutable, order-independent selection of facet values.
// The zero value is the empty set.
type Set struct {
	values []string
}

// NewSet builds a Set from values, dropping empty strings and duplicates.
func NewSet(values ...string) Set {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return Set{values: slices.Compact(out)}
}

func (s Set) Len() int {
	return len(s.values)
}

func (s Set) IsEmpty() bool {
	return len(s.values) == 0
}

func (s Set) Has(v string) bool {
	_, found := slices.BinarySearch(s.values, v)
	return found
}

// Values returns the members in sorted order. The slice is a copy.
func (s Set) Values() []string {
	return slices.Clone(s.values)
}

// With returns a new Set that also contains v.
func (s Set) With(v string) Set {
	if v == "" || s.Has(v) {
		return s
	}
	return NewSet(append(s.Values(), v)...)
}

// Without returns a new Set that does not contain v.
func (s Set) Without(v string) Set {
	if !s.Has(v) {
		return s
	}
	out := make([]string, 0, len(s.values)-1)
	for _, cur := range s.values {
		if cur != v {
			out = append(out, cur)
		}
	}
	return Set{values: out}
}

// Toggle mirrors a checkbox: on adds v, off removes it.
func (s Set) Toggle(v string, on bool) Set {
	if on {
		return s.With(v)
	}
	return s.Without(v)
}

func (s Set) Equal(other Set) bool {
	return slices.Equal(s.values, other.values)
}

func (s Set) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSet(values...)
	return nil
}
