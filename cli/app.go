package cli

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/storage"
	"hotel-booking/utils"
)

// app carries what every command needs once flags and environment are read.
type app struct {
	cfg    *config.Config
	logger *utils.Logger
}

func newApp(cfg *config.Config, logger *utils.Logger) *app {
	logger.SetDebug(cfg.Debug)
	return &app{cfg: cfg, logger: logger}
}

func (a *app) retry() *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: a.cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      a.logger,
	}
}

// openCatalog returns the catalog source selected by CATALOG_SOURCE.
func (a *app) openCatalog(ctx context.Context) (storage.CatalogSource, error) {
	switch a.cfg.CatalogSource {
	case config.SourceStatic, "":
		return storage.NewStaticCatalog(), nil
	case config.SourceCSV:
		return storage.NewCSVCatalog(a.cfg.CatalogRoomsCSV, a.cfg.CatalogReviewsCSV, services.NewCleaner(a.logger)), nil
	case config.SourcePostgres:
		return storage.NewPostgresCatalog(ctx, a.cfg.DSN(), a.retry())
	default:
		return nil, fmt.Errorf("unknown catalog source %q (want static, csv or postgres)", a.cfg.CatalogSource)
	}
}

// loadBoards seeds both listings from the configured catalog.
func (a *app) loadBoards(ctx context.Context) (*services.RoomBoard, *services.ReviewBoard, error) {
	source, err := a.openCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer source.Close()

	var (
		rooms   []*models.Room
		reviews []*models.Review
	)
	pool := utils.NewWorkerPool(2)
	pool.Submit(func() (err error) {
		rooms, err = source.LoadRooms(ctx)
		return err
	})
	pool.Submit(func() (err error) {
		reviews, err = source.LoadReviews(ctx)
		return err
	})
	if err := pool.Wait(); err != nil {
		return nil, nil, err
	}

	a.logger.Debug("[catalog] Loaded %d rooms and %d reviews from %s", len(rooms), len(reviews), a.cfg.CatalogSource)
	return services.NewRoomBoard(rooms, a.logger), services.NewReviewBoard(reviews, a.logger), nil
}
