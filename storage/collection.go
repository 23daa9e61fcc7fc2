package storage

import (
	"errors"
	"fmt"

	"hotel-booking/utils"
)

var (
	ErrEmptyID     = errors.New("collection: record has no id")
	ErrDuplicateID = errors.New("collection: duplicate id")
)

// Identifiable is any record with a stable id.
type Identifiable interface {
	GetID() string
}

// Collection owns the authoritative, newest-first sequence of records.
// Insert is its only mutation; records already stored are never changed.
type Collection[T Identifiable] struct {
	records []T
	ids     *utils.KeySet
}

// NewCollection seeds a Collection. Records without an id and repeats of an id
// already seen are dropped, keeping the first occurrence.
func NewCollection[T Identifiable](seed []T, logger *utils.Logger) *Collection[T] {
	c := &Collection[T]{
		records: make([]T, 0, len(seed)),
		ids:     utils.NewKeySet(),
	}
	for _, r := range seed {
		id := r.GetID()
		if id == "" {
			logger.Warn("[collection] Dropping seed record without id")
			continue
		}
		if !c.ids.Add(id) {
			logger.Warn("[collection] Dropping seed record with duplicate id %s", id)
			continue
		}
		c.records = append(c.records, r)
	}
	return c
}

// All returns the records in collection order. The slice is a copy.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Collection[T]) Len() int {
	return len(c.records)
}

// Get returns the record with id.
func (c *Collection[T]) Get(id string) (T, bool) {
	for _, r := range c.records {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Insert prepends record and returns the new length.
func (c *Collection[T]) Insert(record T) (int, error) {
	id := record.GetID()
	if id == "" {
		return c.Len(), ErrEmptyID
	}
	if c.ids.Contains(id) {
		return c.Len(), fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	next := make([]T, 0, len(c.records)+1)
	next = append(next, record)
	next = append(next, c.records...)
	c.records = next
	c.ids.Add(id)
	return len(c.records), nil
}
