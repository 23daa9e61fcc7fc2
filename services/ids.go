package services

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource mints record ids. Successive ids from one source are unique and
// sort in the order they were minted.
type IDSource func() (string, error)

// TimeOrderedIDs returns UUIDv7 ids: millisecond timestamp plus a sub-millisecond
// sequence, strictly increasing within the process even for back-to-back inserts.
func TimeOrderedIDs() IDSource {
	return func() (string, error) {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("ids: new v7: %w", err)
		}
		return id.String(), nil
	}
}

// SequentialIDs returns prefix-0001, prefix-0002, ... for deterministic callers.
func SequentialIDs(prefix string) IDSource {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("%s-%04d", prefix, n), nil
	}
}
