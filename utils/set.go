package utils

// KeySet tracks string keys that have already been seen, such as record ids.
// It is not safe for concurrent use; the collections that own one are single-threaded.
type KeySet struct {
	seen map[string]struct{}
}

// NewKeySet creates a KeySet pre-populated with keys.
func NewKeySet(keys ...string) *KeySet {
	s := &KeySet{seen: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.seen[k] = struct{}{}
	}
	return s
}

// Add returns true if the key was newly added, false if already present.
func (s *KeySet) Add(key string) bool {
	if _, exists := s.seen[key]; exists {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Contains returns true if the key has already been added.
func (s *KeySet) Contains(key string) bool {
	_, exists := s.seen[key]
	return exists
}

// Size returns the number of unique keys tracked.
func (s *KeySet) Size() int {
	return len(s.seen)
}
