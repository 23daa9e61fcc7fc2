package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"hotel-booking/models"
	"hotel-booking/services"
)

const (
	bold  = "\033[1m"
	blue  = "\033[1;34m"
	reset = "\033[0m"
)

// viewJSON is the --json shape of a listing.
type viewJSON[T any] struct {
	Records  []T              `json:"records"`
	Count    models.ViewCount `json:"count"`
	ActiveID string           `json:"activeId,omitempty"`
}

func writeJSON[T any](w io.Writer, view services.View[T], sel services.Selection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(viewJSON[T]{Records: view.Records, Count: view.Count, ActiveID: sel.ActiveID})
}

func printRooms(w io.Writer, view services.View[*models.Room], sel services.Selection) {
	if len(view.Records) == 0 {
		fmt.Fprintln(w, "No rooms match your filters.")
	}
	for _, r := range view.Records {
		marker, on, off := "  ", "", ""
		if sel.IsActive(r.ID) {
			marker, on, off = "▶ ", blue, reset
		}
		fmt.Fprintf(w, "%s%s%s%s · %s · %s%s\n", marker, on, bold, r.Hotel.Name, r.Hotel.City, r.RoomType, reset+off)
		fmt.Fprintf(w, "    %s\n", r.Hotel.Address)
		if len(r.Amenities) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(r.Amenities, ", "))
		}
		fmt.Fprintf(w, "    $%g/night   [%s]\n", r.PricePerNight, r.ID)
	}
	fmt.Fprintf(w, "Showing %d of %d rooms\n", view.Count.Filtered, view.Count.Total)
}

func printReviews(w io.Writer, view services.View[*models.Review], sel services.Selection) {
	if len(view.Records) == 0 {
		fmt.Fprintln(w, "No experiences found.")
	}
	for _, r := range view.Records {
		marker, on, off := "  ", "", ""
		if sel.IsActive(r.ID) {
			marker, on, off = "▶ ", blue, reset
		}
		fmt.Fprintf(w, "%s%s%s%s%s %s %.1f\n", marker, on, bold, r.Title, reset+on, stars(r.Rating), r.Rating)
		fmt.Fprintf(w, "    by %s · %s   [%s]%s\n", r.Guest, r.CreatedAt.Format("2006-01-02"), r.ID, off)
		fmt.Fprintf(w, "    %s\n", r.Text)
	}
	fmt.Fprintf(w, "Showing %d of %d experiences\n", view.Count.Filtered, view.Count.Total)
}

// stars renders the rating rounded to whole stars.
func stars(rating float64) string {
	n := int(rating + 0.5)
	return strings.Repeat("★", n)
}
