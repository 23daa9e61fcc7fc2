package services

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"
)

func newTestBoard(seed []*models.Review) *ReviewBoard {
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return NewReviewBoard(seed, utils.Discard(),
		WithIDs(SequentialIDs("rv")),
		WithClock(func() time.Time { return clock }),
	)
}

func TestSubmitRefusesInvalidForms(t *testing.T) {
	board := newTestBoard(sampleReviews())
	state := ViewState{Selection: Selection{ActiveID: "2"}}

	forms := []models.ReviewForm{
		{Guest: "", Title: "X", Text: "Y", Rating: "3"},
		{Guest: "A", Title: "B", Text: "C", Rating: "7"},
	}
	for _, form := range forms {
		next, added, err := board.Submit(state, form)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Submit(%+v): got %v, want a validation error", form, err)
		}
		if added != nil {
			t.Errorf("Submit(%+v) returned a record", form)
		}
		if board.Len() != 3 {
			t.Errorf("collection grew to %d after a refused submission", board.Len())
		}
		if next.Selection != state.Selection {
			t.Errorf("selection changed to %+v", next.Selection)
		}
		if next.Draft != form {
			t.Errorf("draft not kept: %+v", next.Draft)
		}
	}
}

func TestSubmitPrependsAndHighlights(t *testing.T) {
	board := newTestBoard(sampleReviews())
	state := ViewState{Draft: models.ReviewForm{Guest: "half typed"}}

	next, added, err := board.Submit(state, models.ReviewForm{Guest: "A", Title: "B", Text: "C", Rating: "3.5"})
	if err != nil {
		t.Fatal(err)
	}

	if added.ID != "rv-0001" || added.Rating != 3.5 || added.CreatedAt.IsZero() {
		t.Errorf("added: %+v", added)
	}
	view := board.View(ViewState{})
	if view.Records[0].ID != added.ID {
		t.Errorf("first record: got %s, want %s", view.Records[0].ID, added.ID)
	}
	if view.Count != (models.ViewCount{Filtered: 4, Total: 4}) {
		t.Errorf("count: %+v", view.Count)
	}
	if id, ok := next.Selection.Current(); !ok || id != added.ID {
		t.Errorf("active id: got %q, want %q", id, added.ID)
	}
	if !next.Draft.IsZero() {
		t.Errorf("draft not cleared: %+v", next.Draft)
	}
}

func TestNoSortKeepsNewestFirstAmongEqualRatings(t *testing.T) {
	board := newTestBoard(nil)
	state := ViewState{}

	var err error
	state, _, err = board.Submit(state, models.ReviewForm{Guest: "A", Title: "first", Text: "x", Rating: "4"})
	if err != nil {
		t.Fatal(err)
	}
	state, _, err = board.Submit(state, models.ReviewForm{Guest: "B", Title: "second", Text: "x", Rating: "4"})
	if err != nil {
		t.Fatal(err)
	}

	for _, sort := range []SortSpec{SortNone, SortNewestFirst} {
		state = Reduce(state, SetSort{Sort: sort})
		state = Reduce(state, SetMinThreshold{Value: 4})
		got := ids(board.View(state).Records)
		if !slices.Equal(got, []string{"rv-0002", "rv-0001"}) {
			t.Errorf("%v: got %v, want B before A", sort, got)
		}
	}
}

func TestSubmitDraft(t *testing.T) {
	board := newTestBoard(nil)
	state := ViewState{}
	for _, ev := range []Event{
		EditDraft{Field: "guest", Value: "Ola"},
		EditDraft{Field: "title", Value: "Sunny"},
		EditDraft{Field: "text", Value: "Bright room"},
		EditDraft{Field: "rating", Value: "4.5"},
	} {
		state = Reduce(state, ev)
	}

	state, added, err := board.SubmitDraft(state)
	if err != nil {
		t.Fatal(err)
	}
	if added.Guest != "Ola" || !state.Draft.IsZero() {
		t.Errorf("added %+v, draft %+v", added, state.Draft)
	}
}

func TestSubmitWithFailingIDSource(t *testing.T) {
	failing := func() (string, error) { return "", errors.New("entropy exhausted") }
	board := NewReviewBoard(nil, utils.Discard(), WithIDs(failing))

	_, added, err := board.Submit(ViewState{}, models.ReviewForm{Guest: "A", Title: "B", Text: "C", Rating: "1"})
	if err == nil || added != nil || board.Len() != 0 {
		t.Errorf("got %v, %v, len %d", added, err, board.Len())
	}
}

func TestSubmitRejectsReusedID(t *testing.T) {
	board := NewReviewBoard(sampleReviews(), utils.Discard(), WithIDs(func() (string, error) { return "1", nil }))

	_, _, err := board.Submit(ViewState{}, models.ReviewForm{Guest: "A", Title: "B", Text: "C", Rating: "1"})
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("got %v, want duplicate id error", err)
	}
}

func TestTimeOrderedIDsAreMonotonic(t *testing.T) {
	next := TimeOrderedIDs()
	prev := ""
	for i := 0; i < 1000; i++ {
		id, err := next()
		if err != nil {
			t.Fatal(err)
		}
		if id <= prev {
			t.Fatalf("id %d not increasing: %s after %s", i, id, prev)
		}
		prev = id
	}
}

func TestSeedDuplicatesAreDropped(t *testing.T) {
	seed := append(sampleReviews(), review("1", "Copy", "Copy", "Copy", 1))
	board := newTestBoard(seed)
	if board.Len() != 3 {
		t.Errorf("Len: got %d, want 3", board.Len())
	}
	if r, _ := board.Get("1"); r.Guest != "Rahul Patil" {
		t.Errorf("first occurrence not kept: %+v", r)
	}
}

func TestRoomBoard(t *testing.T) {
	board := NewRoomBoard(sampleRooms(), utils.Discard())
	state := Reduce(ViewState{}, ToggleCategory{Value: "Single Bed", On: true})
	state = Reduce(state, SetSort{Sort: SortPriceDesc})
	state = Reduce(state, Activate{ID: "c"})

	view := board.View(state)
	if got := ids(view.Records); !slices.Equal(got, []string{"f", "b"}) {
		t.Errorf("got %v", got)
	}
	if IsVisible(state.Selection, view.Records) {
		t.Error("room c is filtered out but reported visible")
	}

	state = Reduce(state, ClearFilters{})
	if !IsVisible(state.Selection, board.View(state).Records) {
		t.Error("room c should reappear once filters are cleared")
	}
}
