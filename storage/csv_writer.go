package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hotel-booking/models"
)

var _ ViewWriter = (*CSVWriter)(nil)

// CSVWriter exports the current view to a CSV file in the same column layout
// CSVCatalog reads, so an export can be fed back in as a catalog.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// WriteRooms writes a header row followed by rooms in view order.
func (c *CSVWriter) WriteRooms(rooms []*models.Room) error {
	if err := c.writer.Write(roomColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, r := range rooms {
		row := []string{
			r.ID,
			r.Hotel.Name,
			r.Hotel.Address,
			r.Hotel.City,
			r.RoomType,
			strconv.FormatFloat(r.PricePerNight, 'f', -1, 64),
			strings.Join(r.Amenities, ";"),
			strings.Join(r.Images, ";"),
			strconv.FormatBool(r.IsAvailable),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// WriteReviews writes a header row followed by reviews in view order.
func (c *CSVWriter) WriteReviews(reviews []*models.Review) error {
	if err := c.writer.Write(reviewColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, r := range reviews {
		row := []string{
			r.ID,
			r.Guest,
			r.Title,
			r.Text,
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
