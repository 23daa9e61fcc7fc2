package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"hotel-booking/models"
	"hotel-booking/utils"
)

var (
	// priceRegexp captures numeric price values
	priceRegexp = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
	// nightsRegexp captures "X nights"; a bare "night" suffix means the price is already per night
	nightsRegexp = regexp.MustCompile(`\b(\d+)\s*nights\b`)
)

// catalogDateLayouts are the timestamp formats accepted in catalog rows.
var catalogDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Cleaner turns raw catalog rows into validated records.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// CleanRooms normalises raw room rows, dropping rows without an id and repeated ids.
func (c *Cleaner) CleanRooms(raw []*models.RawRoom) []*models.Room {
	seen := utils.NewKeySet()
	result := make([]*models.Room, 0, len(raw))

	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			c.logger.Warn("[cleaner] Dropping room with empty id: %s", r.HotelName)
			continue
		}
		if !seen.Add(id) {
			c.logger.Debug("[cleaner] Duplicate room id skipped: %s", id)
			continue
		}

		price, ok := c.parsePrice(r.RawPrice)
		if !ok {
			c.logger.Warn("[cleaner] Dropping room %s with unreadable price %q", id, r.RawPrice)
			continue
		}

		result = append(result, &models.Room{
			ID: id,
			Hotel: models.Hotel{
				Name:    normaliseText(r.HotelName),
				Address: normaliseText(r.Address),
				City:    normaliseText(r.City),
			},
			RoomType:      normaliseText(r.RoomType),
			PricePerNight: price,
			Amenities:     splitList(r.Amenities),
			Images:        splitList(r.Images),
			IsAvailable:   parseAvailable(r.Available),
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d rooms (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// CleanReviews validates raw review rows the same way submitted reviews are validated.
// Rows that would be refused by the form are dropped.
func (c *Cleaner) CleanReviews(raw []*models.RawReview) []*models.Review {
	seen := utils.NewKeySet()
	result := make([]*models.Review, 0, len(raw))

	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" || !seen.Add(id) {
			c.logger.Debug("[cleaner] Review row skipped (empty or repeated id %q)", id)
			continue
		}

		review, err := ValidateReview(models.ReviewForm{
			Guest:  r.Guest,
			Title:  r.Title,
			Text:   r.Text,
			Rating: r.Rating,
		})
		if err != nil {
			c.logger.Warn("[cleaner] Dropping review %s: %v", id, err)
			continue
		}
		review.ID = id
		review.CreatedAt = parseCatalogTime(r.CreatedAt)
		result = append(result, &review)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d reviews (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parsePrice extracts a per-night price.
// Examples:
//
//	"$150 night" → 150
//	"$450 for 3 nights" → 150 (450/3)
//	"1,200" → 1200
func (c *Cleaner) parsePrice(raw string) (float64, bool) {
	raw = strings.ToLower(raw)

	cleaned := strings.ReplaceAll(raw, ",", "")
	match := priceRegexp.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	totalPrice, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	nightsMatch := nightsRegexp.FindStringSubmatch(raw)
	if len(nightsMatch) >= 2 {
		nights, err := strconv.Atoi(nightsMatch[1])
		if err == nil && nights > 1 {
			perNightPrice := totalPrice / float64(nights)
			c.logger.Debug("[cleaner] Multi-night price detected: $%.2f for %d nights = $%.2f/night",
				totalPrice, nights, perNightPrice)
			return perNightPrice, true
		}
	}

	return totalPrice, true
}

func parseCatalogTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range catalogDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseAvailable(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	return err != nil || v
}

// splitList splits a ";"-separated cell into trimmed, non-empty values.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if p := normaliseText(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
