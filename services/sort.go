package services

import (
	"fmt"
	"strings"
)

// SortSpec selects how a filtered view is ordered.
type SortSpec int

const (
	// SortNone keeps collection order.
	SortNone SortSpec = iota
	SortPriceAsc
	SortPriceDesc
	// SortNewestFirst has no comparator: collections are already newest first
	// because inserts prepend.
	SortNewestFirst
)

var sortLabels = map[SortSpec]string{
	SortNone:        "",
	SortPriceAsc:    "Price Low to High",
	SortPriceDesc:   "Price High to Low",
	SortNewestFirst: "Newest First",
}

// SortOptions are the directives offered by the "Sort By" radio group, in display order.
var SortOptions = []SortSpec{SortPriceAsc, SortPriceDesc, SortNewestFirst}

func (s SortSpec) String() string {
	if label, ok := sortLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("SortSpec(%d)", int(s))
}

// ParseSort maps a radio label to its SortSpec. The empty label is SortNone.
// Matching ignores case and surrounding whitespace.
func ParseSort(label string) (SortSpec, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return SortNone, nil
	}
	for spec, l := range sortLabels {
		if l != "" && strings.EqualFold(l, label) {
			return spec, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort option %q", label)
}

func (s SortSpec) MarshalText() ([]byte, error) {
	if _, ok := sortLabels[s]; !ok {
		return nil, fmt.Errorf("unknown sort spec %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *SortSpec) UnmarshalText(text []byte) error {
	spec, err := ParseSort(string(text))
	if err != nil {
		return err
	}
	*s = spec
	return nil
}
