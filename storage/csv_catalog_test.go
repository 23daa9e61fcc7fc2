package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotel-booking/services"
	"hotel-booking/storage"
	"hotel-booking/utils"
)

func TestCSVExportReadsBackAsCatalog(t *testing.T) {
	dir := t.TempDir()
	roomsPath := filepath.Join(dir, "out", "rooms.csv")
	reviewsPath := filepath.Join(dir, "out", "reviews.csv")

	w, err := storage.NewCSVWriter(roomsPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRooms(storage.SampleRooms()); err != nil {
		t.Fatal(err)
	}
	w.Close()

	w, err = storage.NewCSVWriter(reviewsPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteReviews(storage.SampleReviews()); err != nil {
		t.Fatal(err)
	}
	w.Close()

	catalog := storage.NewCSVCatalog(roomsPath, reviewsPath, services.NewCleaner(utils.Discard()))
	ctx := context.Background()

	rooms, err := catalog.LoadRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := storage.SampleRooms()
	if len(rooms) != len(want) {
		t.Fatalf("rooms: got %d, want %d", len(rooms), len(want))
	}
	for i := range want {
		got := rooms[i]
		if got.ID != want[i].ID || got.PricePerNight != want[i].PricePerNight ||
			got.RoomType != want[i].RoomType || got.IsAvailable != want[i].IsAvailable ||
			strings.Join(got.Amenities, ";") != strings.Join(want[i].Amenities, ";") {
			t.Errorf("room %d: got %+v, want %+v", i, got, want[i])
		}
	}

	reviews, err := catalog.LoadReviews(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 2 {
		t.Errorf("reviews: got %d, want the 2 unique sample reviews", len(reviews))
	}
}

func TestCSVCatalogMatchesColumnsByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.csv")
	data := "price,room_type,id,city\n" +
		"\"1,250\",Luxury Bed,x1,Goa\n" +
		"abc,Single Bed,x2,Goa\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rooms, err := storage.NewCSVCatalog(path, "", services.NewCleaner(utils.Discard())).LoadRooms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 1 || rooms[0].ID != "x1" || rooms[0].PricePerNight != 1250 || rooms[0].Hotel.City != "Goa" {
		t.Errorf("got %+v", rooms)
	}
}

func TestCSVCatalogErrors(t *testing.T) {
	dir := t.TempDir()
	cleaner := services.NewCleaner(utils.Discard())
	ctx := context.Background()

	if _, err := storage.NewCSVCatalog(filepath.Join(dir, "missing.csv"), "", cleaner).LoadRooms(ctx); err == nil {
		t.Error("expected error for missing file")
	}

	noID := filepath.Join(dir, "noid.csv")
	if err := os.WriteFile(noID, []byte("price,room_type\n1,Single Bed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := storage.NewCSVCatalog(noID, "", cleaner).LoadRooms(ctx); err == nil {
		t.Error("expected error for missing id column")
	}

	reviews, err := storage.NewCSVCatalog(noID, "", cleaner).LoadReviews(ctx)
	if err != nil || reviews != nil {
		t.Errorf("empty reviews path: got %v, %v", reviews, err)
	}
}
