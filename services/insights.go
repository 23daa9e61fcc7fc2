package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"hotel-booking/models"
	"hotel-booking/utils"
)

// topRatedLimit caps the review leaderboard.
const topRatedLimit = 5

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Rooms summarises a room view.
func (s *InsightService) Rooms(view View[*models.Room]) *models.RoomInsightReport {
	report := &models.RoomInsightReport{
		Count:      view.Count,
		ByCity:     make(map[string]int),
		ByRoomType: make(map[string]int),
	}

	if len(view.Records) == 0 {
		return report
	}

	report.MinPrice = view.Records[0].PricePerNight
	report.MaxPrice = view.Records[0].PricePerNight
	report.MostExpensive = view.Records[0]

	var total float64
	for _, r := range view.Records {
		total += r.PricePerNight
		if r.PricePerNight < report.MinPrice {
			report.MinPrice = r.PricePerNight
		}
		if r.PricePerNight > report.MaxPrice {
			report.MaxPrice = r.PricePerNight
			report.MostExpensive = r
		}
		if r.Hotel.City != "" {
			report.ByCity[r.Hotel.City]++
		}
		report.ByRoomType[r.RoomType]++
	}
	report.AveragePrice = round2(total / float64(len(view.Records)))
	report.MinPrice = round2(report.MinPrice)
	report.MaxPrice = round2(report.MaxPrice)

	return report
}

// Reviews summarises a review view.
func (s *InsightService) Reviews(view View[*models.Review]) *models.ReviewInsightReport {
	report := &models.ReviewInsightReport{Count: view.Count}
	if len(view.Records) == 0 {
		return report
	}

	var total float64
	for _, r := range view.Records {
		total += r.Rating
	}
	report.AverageRating = round2(total / float64(len(view.Records)))

	ranked := make([]*models.Review, len(view.Records))
	copy(ranked, view.Records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if len(ranked) > topRatedLimit {
		ranked = ranked[:topRatedLimit]
	}
	report.TopRated = ranked

	return report
}

// PrintRooms writes a room report in the terminal report style.
func (s *InsightService) PrintRooms(w io.Writer, r *models.RoomInsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  ROOM INSIGHTS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Showing \033[1m%d\033[0m of \033[1m%d\033[0m rooms\n", r.Count.Filtered, r.Count.Total)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Price Statistics (per night)\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.Count.Filtered > 0 {
		fmt.Fprintf(w, "  Average price : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
		fmt.Fprintf(w, "  Minimum price : \033[1;32m$%.2f\033[0m\n", r.MinPrice)
		fmt.Fprintf(w, "  Maximum price : \033[1;32m$%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Fprintf(w, "  No rooms match your filters.\n")
	}
	fmt.Fprintln(w)

	if r.MostExpensive != nil {
		fmt.Fprintf(w, "\033[1;33m  Most Expensive Room\033[0m\n")
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s (%s)\n", truncate(r.MostExpensive.Hotel.Name, 40), r.MostExpensive.RoomType)
		fmt.Fprintf(w, "  City     : %s\n", r.MostExpensive.Hotel.City)
		fmt.Fprintf(w, "  Price    : \033[1;31m$%.2f/night\033[0m\n", r.MostExpensive.PricePerNight)
		fmt.Fprintln(w)
	}

	printCounts(w, "Rooms by City", r.ByCity, thin)
	printCounts(w, "Rooms by Type", r.ByRoomType, thin)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// PrintReviews writes a review report in the terminal report style.
func (s *InsightService) PrintReviews(w io.Writer, r *models.ReviewInsightReport) {
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;33m  Guest Experiences\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Showing \033[1m%d\033[0m of \033[1m%d\033[0m experiences\n", r.Count.Filtered, r.Count.Total)
	if r.Count.Filtered == 0 {
		fmt.Fprintf(w, "  No experiences found.\n\n")
		return
	}
	fmt.Fprintf(w, "  Average rating : \033[1;32m%.2f ★\033[0m\n\n", r.AverageRating)
	for i, rv := range r.TopRated {
		fmt.Fprintf(w, "  \033[1m%d.\033[0m %-40s \033[1;32m%.1f ★\033[0m\n",
			i+1, truncate(rv.Title, 38), rv.Rating)
	}
	fmt.Fprintln(w)
}

func printCounts(w io.Writer, title string, counts map[string]int, thin string) {
	fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(w, "  %s\n", thin)
	if len(counts) == 0 {
		fmt.Fprintf(w, "  No data\n")
		return
	}

	type keyCount struct {
		key   string
		count int
	}
	var rows []keyCount
	for k, c := range counts {
		rows = append(rows, keyCount{k, c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	for _, kc := range rows {
		bar := strings.Repeat("█", kc.count)
		fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(kc.key, 28), bar, kc.count)
	}
	fmt.Fprintln(w)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
