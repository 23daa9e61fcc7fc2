package services

import (
	"hotel-booking/models"
)

// Selection tracks the single highlighted record, if any.
// It is a value: Activate and Clear return the new state.
type Selection struct {
	ActiveID string `json:"activeId,omitempty"`
}

// Activate replaces the highlighted record with id. The id does not need to be in
// the current view; it simply has no visible target until it reappears.
func (s Selection) Activate(id string) Selection {
	return Selection{ActiveID: id}
}

func (s Selection) Clear() Selection {
	return Selection{}
}

// Current returns the highlighted id and whether one is set.
func (s Selection) Current() (string, bool) {
	return s.ActiveID, s.ActiveID != ""
}

// IsActive reports whether id is the highlighted record.
func (s Selection) IsActive(id string) bool {
	return s.ActiveID != "" && s.ActiveID == id
}

// IsVisible reports whether the highlighted record is part of view.
func IsVisible[T interface{ GetID() string }](s Selection, view []T) bool {
	if s.ActiveID == "" {
		return false
	}
	for _, r := range view {
		if r.GetID() == s.ActiveID {
			return true
		}
	}
	return false
}

// ViewState is everything a listing page keeps between events: facet selections,
// sort order, highlighted record and the unsent review form.
type ViewState struct {
	Filter    FilterSpec        `json:"filter"`
	Sort      SortSpec          `json:"sort"`
	Selection Selection         `json:"selection"`
	Draft     models.ReviewForm `json:"draft"`
}

// Event is a user interaction that changes a ViewState.
type Event interface {
	apply(ViewState) ViewState
}

// Reduce returns the state that results from ev. It never mutates its input.
func Reduce(state ViewState, ev Event) ViewState {
	if ev == nil {
		return state
	}
	return ev.apply(state)
}

type SetQuery struct{ Query string }

func (e SetQuery) apply(s ViewState) ViewState {
	s.Filter.TextQuery = e.Query
	return s
}

// SetMinThreshold sets the minimum rating. Values outside [0,5] leave the state unchanged.
type SetMinThreshold struct{ Value float64 }

func (e SetMinThreshold) apply(s ViewState) ViewState {
	if !(e.Value >= MinRating && e.Value <= MaxRating) {
		return s
	}
	s.Filter.MinThreshold = e.Value
	return s
}

type ToggleCategory struct {
	Value string
	On    bool
}

func (e ToggleCategory) apply(s ViewState) ViewState {
	s.Filter.Categories = s.Filter.Categories.Toggle(e.Value, e.On)
	return s
}

type ToggleBucket struct {
	Label string
	On    bool
}

func (e ToggleBucket) apply(s ViewState) ViewState {
	s.Filter.Buckets = s.Filter.Buckets.Toggle(e.Label, e.On)
	return s
}

type SetSort struct{ Sort SortSpec }

func (e SetSort) apply(s ViewState) ViewState {
	s.Sort = e.Sort
	return s
}

// ClearFilters resets every facet and the sort order. The highlight is kept.
type ClearFilters struct{}

func (ClearFilters) apply(s ViewState) ViewState {
	s.Filter = FilterSpec{}
	s.Sort = SortNone
	return s
}

// Activate highlights a record after a click or keyboard confirm.
type Activate struct{ ID string }

func (e Activate) apply(s ViewState) ViewState {
	s.Selection = s.Selection.Activate(e.ID)
	return s
}

// EditDraft updates one field of the unsent review form. Unknown fields are ignored.
type EditDraft struct {
	Field string
	Value string
}

func (e EditDraft) apply(s ViewState) ViewState {
	switch e.Field {
	case "guest":
		s.Draft.Guest = e.Value
	case "title":
		s.Draft.Title = e.Value
	case "text":
		s.Draft.Text = e.Value
	case "rating":
		s.Draft.Rating = e.Value
	}
	return s
}

type DiscardDraft struct{}

func (DiscardDraft) apply(s ViewState) ViewState {
	s.Draft = models.ReviewForm{}
	return s
}
