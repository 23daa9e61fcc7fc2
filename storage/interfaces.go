package storage

import (
	"context"

	"hotel-booking/models"
)

// CatalogSource is the fixed catalog the listings are seeded from at startup.
type CatalogSource interface {
	LoadRooms(ctx context.Context) ([]*models.Room, error)
	LoadReviews(ctx context.Context) ([]*models.Review, error)
	Close() error
}

// RowCleaner turns raw catalog rows into records. CSV catalogs need one.
type RowCleaner interface {
	CleanRooms(raw []*models.RawRoom) []*models.Room
	CleanReviews(raw []*models.RawReview) []*models.Review
}

// ViewWriter exports a rendered view.
type ViewWriter interface {
	WriteRooms(rooms []*models.Room) error
	WriteReviews(reviews []*models.Review) error
	Close() error
}
