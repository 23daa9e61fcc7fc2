package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"hotel-booking/models"
	"hotel-booking/utils"
)

const seedBatchSize = 50

var _ CatalogSource = (*PostgresCatalog)(nil)

// PostgresCatalog reads the room and review catalog from PostgreSQL.
// It never stores reviews submitted at runtime.
type PostgresCatalog struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresCatalog opens a connection, waits for the server with retry, runs
// schema migrations and returns a ready-to-use PostgresCatalog.
func NewPostgresCatalog(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pc := &PostgresCatalog{db: db, logger: retry.Logger}
	if err := pc.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pc, nil
}

func (pc *PostgresCatalog) migrate(ctx context.Context) error {
	_, err := pc.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS rooms (
			id              TEXT          PRIMARY KEY,
			hotel_name      TEXT          NOT NULL,
			address         TEXT          NOT NULL DEFAULT '',
			city            TEXT          NOT NULL DEFAULT '',
			owner           TEXT          NOT NULL DEFAULT '',
			room_type       TEXT          NOT NULL,
			price_per_night NUMERIC(10,2) NOT NULL CHECK (price_per_night >= 0),
			amenities       TEXT[]        NOT NULL DEFAULT '{}',
			images          TEXT[]        NOT NULL DEFAULT '{}',
			is_available    BOOLEAN       NOT NULL DEFAULT TRUE,
			position        INTEGER       NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS reviews (
			id         TEXT         PRIMARY KEY,
			guest      TEXT         NOT NULL,
			title      TEXT         NOT NULL,
			text       TEXT         NOT NULL,
			rating     NUMERIC(2,1) NOT NULL CHECK (rating >= 0 AND rating <= 5),
			position   INTEGER      NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_rooms_room_type ON rooms(room_type);
		CREATE INDEX IF NOT EXISTS idx_rooms_price     ON rooms(price_per_night);
	`)
	return err
}

// LoadRooms returns the rooms in catalog order.
func (pc *PostgresCatalog) LoadRooms(ctx context.Context) ([]*models.Room, error) {
	rows, err := pc.db.QueryContext(ctx, `
		SELECT id, hotel_name, address, city, owner, room_type, price_per_night,
		       amenities, images, is_available, created_at
		FROM rooms
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		r := &models.Room{}
		if err := rows.Scan(
			&r.ID, &r.Hotel.Name, &r.Hotel.Address, &r.Hotel.City, &r.Hotel.Owner,
			&r.RoomType, &r.PricePerNight, pq.Array(&r.Amenities), pq.Array(&r.Images),
			&r.IsAvailable, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// LoadReviews returns the reviews in catalog order, newest first.
func (pc *PostgresCatalog) LoadReviews(ctx context.Context) ([]*models.Review, error) {
	rows, err := pc.db.QueryContext(ctx, `
		SELECT id, guest, title, text, rating, created_at
		FROM reviews
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		r := &models.Review{}
		if err := rows.Scan(&r.ID, &r.Guest, &r.Title, &r.Text, &r.Rating, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// SeedCatalog replaces the stored catalog with rooms and reviews, keeping their order.
// Repeated ids keep the first occurrence.
func (pc *PostgresCatalog) SeedCatalog(ctx context.Context, rooms []*models.Room, reviews []*models.Review) error {
	tx, err := pc.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rooms; DELETE FROM reviews"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for i := 0; i < len(rooms); i += seedBatchSize {
		end := min(i+seedBatchSize, len(rooms))
		if err := insertRooms(ctx, tx, rooms[i:end], i); err != nil {
			return err
		}
	}
	for i := 0; i < len(reviews); i += seedBatchSize {
		end := min(i+seedBatchSize, len(reviews))
		if err := insertReviews(ctx, tx, reviews[i:end], i); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	if pc.logger != nil {
		pc.logger.Info("[postgres] Seeded %d rooms and %d reviews", len(rooms), len(reviews))
	}
	return nil
}

func insertRooms(ctx context.Context, tx *sql.Tx, batch []*models.Room, offset int) error {
	const cols = 12
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		valueStrings = append(valueStrings, placeholders(idx*cols, cols))
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		valueArgs = append(valueArgs,
			r.ID, r.Hotel.Name, r.Hotel.Address, r.Hotel.City, r.Hotel.Owner, r.RoomType,
			r.PricePerNight, pq.Array(r.Amenities), pq.Array(r.Images), r.IsAvailable,
			offset+idx, createdAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO rooms (id, hotel_name, address, city, owner, room_type, price_per_night,
		                   amenities, images, is_available, position, created_at)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert rooms: %w", err)
	}
	return nil
}

func insertReviews(ctx context.Context, tx *sql.Tx, batch []*models.Review, offset int) error {
	const cols = 7
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, r := range batch {
		valueStrings = append(valueStrings, placeholders(idx*cols, cols))
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		valueArgs = append(valueArgs,
			r.ID, r.Guest, r.Title, r.Text, r.Rating, offset+idx, createdAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO reviews (id, guest, title, text, rating, position, created_at)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert reviews: %w", err)
	}
	return nil
}

// placeholders renders "($base+1,...,$base+n)".
func placeholders(base, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", base+i+1)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (pc *PostgresCatalog) Close() error {
	return pc.db.Close()
}
