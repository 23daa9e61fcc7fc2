package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"hotel-booking/models"
)

var _ CatalogSource = (*CSVCatalog)(nil)

var roomColumns = []string{"id", "hotel_name", "address", "city", "room_type", "price", "amenities", "images", "available"}
var reviewColumns = []string{"id", "guest", "title", "text", "rating", "created_at"}

// CSVCatalog reads the catalog from CSV files with a header row. Columns are
// matched by header name; list cells (amenities, images) are ";"-separated.
// An empty reviews path yields no reviews.
type CSVCatalog struct {
	roomsPath   string
	reviewsPath string
	cleaner     RowCleaner
}

func NewCSVCatalog(roomsPath, reviewsPath string, cleaner RowCleaner) *CSVCatalog {
	return &CSVCatalog{roomsPath: roomsPath, reviewsPath: reviewsPath, cleaner: cleaner}
}

func (c *CSVCatalog) LoadRooms(ctx context.Context) ([]*models.Room, error) {
	rows, err := readTable(ctx, c.roomsPath, roomColumns)
	if err != nil {
		return nil, err
	}
	raw := make([]*models.RawRoom, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, &models.RawRoom{
			ID:        row["id"],
			HotelName: row["hotel_name"],
			Address:   row["address"],
			City:      row["city"],
			RoomType:  row["room_type"],
			RawPrice:  row["price"],
			Amenities: row["amenities"],
			Images:    row["images"],
			Available: row["available"],
		})
	}
	return c.cleaner.CleanRooms(raw), nil
}

func (c *CSVCatalog) LoadReviews(ctx context.Context) ([]*models.Review, error) {
	if c.reviewsPath == "" {
		return nil, nil
	}
	rows, err := readTable(ctx, c.reviewsPath, reviewColumns)
	if err != nil {
		return nil, err
	}
	raw := make([]*models.RawReview, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, &models.RawReview{
			ID:        row["id"],
			Guest:     row["guest"],
			Title:     row["title"],
			Text:      row["text"],
			Rating:    row["rating"],
			CreatedAt: row["created_at"],
		})
	}
	return c.cleaner.CleanReviews(raw), nil
}

func (c *CSVCatalog) Close() error { return nil }

// readTable reads path into one map per data row, keyed by the wanted column names.
// Columns missing from the header read as empty strings.
func readTable(ctx context.Context, path string, wanted []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header of %q: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("csv: %q has no id column", path)
	}

	var rows []map[string]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read %q: %w", path, err)
		}
		row := make(map[string]string, len(wanted))
		for _, col := range wanted {
			if i, ok := index[col]; ok && i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
