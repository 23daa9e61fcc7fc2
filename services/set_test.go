package services

import (
	"encoding/json"
	"testing"
)

func TestSetIsOrderIndependent(t *testing.T) {
	a := NewSet("Luxury Bed", "Single Bed", "Luxury Bed")
	b := NewSet("Single Bed", "Luxury Bed")

	if !a.Equal(b) {
		t.Errorf("sets differ: %v vs %v", a.Values(), b.Values())
	}
	if a.Len() != 2 {
		t.Errorf("Len: got %d, want 2", a.Len())
	}
}

func TestSetToggleDoesNotMutate(t *testing.T) {
	base := NewSet("Double Bed")
	added := base.Toggle("Family Suite", true)
	removed := added.Toggle("Double Bed", false)

	if base.Len() != 1 || !base.Has("Double Bed") {
		t.Errorf("base changed: %v", base.Values())
	}
	if !added.Has("Family Suite") || !added.Has("Double Bed") {
		t.Errorf("added: %v", added.Values())
	}
	if removed.Has("Double Bed") || !removed.Has("Family Suite") {
		t.Errorf("removed: %v", removed.Values())
	}
}

func TestSetJSON(t *testing.T) {
	data, err := json.Marshal(Set{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty set: got %s, want []", data)
	}

	var s Set
	if err := json.Unmarshal([]byte(`["b","a","b"]`), &s); err != nil {
		t.Fatal(err)
	}
	if !s.Equal(NewSet("a", "b")) {
		t.Errorf("decoded: %v", s.Values())
	}
}
