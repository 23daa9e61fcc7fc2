package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hotel-booking/config"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	a := newApp(&config.Config{CatalogSource: config.SourceStatic}, utils.Discard())
	rooms, reviews, err := a.loadBoards(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return newSession(a, rooms, reviews, &out), &out
}

// handle runs one line and returns what it printed.
func handle(t *testing.T, s *Session, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	if err := s.Handle(line); err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	return out.String()
}

func TestSessionReviewFlow(t *testing.T) {
	s, out := newTestSession(t)

	if got := handle(t, s, out, "show"); !strings.Contains(got, "Showing 2 of 2 experiences") {
		t.Errorf("show:\n%s", got)
	}
	if got := handle(t, s, out, "query rooftop"); !strings.Contains(got, "Showing 1 of 2 experiences") {
		t.Errorf("query:\n%s", got)
	}

	got := handle(t, s, out, "add guest=Meera&title=Quiet+floor&text=rooftop+was+calm&rating=4")
	if !strings.Contains(got, "Added review ") || !strings.Contains(got, "Showing 2 of 3 experiences") {
		t.Errorf("add:\n%s", got)
	}
	if !strings.Contains(got, "▶ ") {
		t.Errorf("new review should be highlighted:\n%s", got)
	}
	if _, ok := s.reviewState.Selection.Current(); !ok {
		t.Error("selection not set after submit")
	}

	if got := handle(t, s, out, "min 5"); !strings.Contains(got, "Showing 1 of 3 experiences") {
		t.Errorf("min:\n%s", got)
	}
	if got := handle(t, s, out, "query zzz"); !strings.Contains(got, "No experiences found.") {
		t.Errorf("empty view:\n%s", got)
	}
}

func TestSessionDraftSurvivesFailedSubmit(t *testing.T) {
	s, out := newTestSession(t)

	handle(t, s, out, "set guest Meera")
	handle(t, s, out, "set title Quiet floor")
	handle(t, s, out, "set rating 4.5")

	err := s.Handle("submit")
	if !errors.Is(err, services.ErrMissingFields) {
		t.Fatalf("submit without text: got %v", err)
	}
	if s.reviews.Len() != 2 {
		t.Errorf("collection changed: %d", s.reviews.Len())
	}
	if s.reviewState.Draft.Title != "Quiet floor" {
		t.Errorf("draft lost: %+v", s.reviewState.Draft)
	}

	handle(t, s, out, "set text Slept well.")
	if got := handle(t, s, out, "submit"); !strings.Contains(got, "Showing 3 of 3 experiences") {
		t.Errorf("submit:\n%s", got)
	}
	if !s.reviewState.Draft.IsZero() {
		t.Errorf("draft not cleared: %+v", s.reviewState.Draft)
	}
}

func TestSessionRoomFilters(t *testing.T) {
	s, out := newTestSession(t)

	if got := handle(t, s, out, "type Double Bed"); !strings.Contains(got, "Showing 2 of 8 rooms") {
		t.Errorf("type:\n%s", got)
	}
	if got := handle(t, s, out, "price 300 to 500"); !strings.Contains(got, "Showing 1 of 8 rooms") {
		t.Errorf("price:\n%s", got)
	}
	if got := handle(t, s, out, "type Double Bed"); !strings.Contains(got, "Showing 2 of 8 rooms") {
		t.Errorf("toggle off type:\n%s", got)
	}

	got := handle(t, s, out, "sort Price High to Low")
	if strings.Index(got, "$500/night") > strings.Index(got, "$399/night") {
		t.Errorf("not sorted high to low:\n%s", got)
	}

	if got := handle(t, s, out, "clear"); !strings.Contains(got, "Showing 8 of 8 rooms") {
		t.Errorf("clear:\n%s", got)
	}
	if s.roomState.Sort != services.SortNone {
		t.Errorf("sort not reset: %v", s.roomState.Sort)
	}
}

func TestSessionErrors(t *testing.T) {
	s, _ := newTestSession(t)

	for _, line := range []string{"sort sideways", "page lobby", "min 9", "frobnicate"} {
		if err := s.Handle(line); err == nil {
			t.Errorf("%q: expected error", line)
		}
	}
	if err := s.Handle("quit"); !errors.Is(err, errQuit) {
		t.Errorf("quit: got %v", err)
	}
}

func TestSessionRunStopsAtQuit(t *testing.T) {
	s, out := newTestSession(t)

	err := s.Run(strings.NewReader("bogus\n\nquit\nshow\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `! unknown command "bogus"`) {
		t.Errorf("error not printed:\n%s", got)
	}
	if strings.Contains(got, "Showing") {
		t.Errorf("lines after quit were processed:\n%s", got)
	}
}
