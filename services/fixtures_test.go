package services

import (
	"strconv"
	"time"

	"hotel-booking/models"
)

func room(id, roomType string, price float64) *models.Room {
	return &models.Room{
		ID:            id,
		Hotel:         models.Hotel{Name: "Hotel " + id, City: "Pune", Address: id + " Street"},
		RoomType:      roomType,
		PricePerNight: price,
	}
}

func sampleRooms() []*models.Room {
	return []*models.Room{
		room("a", "Double Bed", 399),
		room("b", "Single Bed", 249),
		room("c", "Luxury Bed", 1299),
		room("d", "Family Suite", 750),
		room("e", "Double Bed", 299),
		room("f", "Single Bed", 399),
	}
}

func review(id, guest, title, text string, rating float64) *models.Review {
	return &models.Review{ID: id, Guest: guest, Title: title, Text: text, Rating: rating,
		CreatedAt: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)}
}

func sampleReviews() []*models.Review {
	return []*models.Review{
		review("1", "Rahul Patil", "Great stay, clean rooms", "Staff was friendly and breakfast was excellent.", 4.5),
		review("2", "Anita Deshpande", "Lovely rooftop view", "Awesome rooftop seating and quick service.", 5),
		review("3", "Sam Lee", "Noisy street", "Room was fine but the street was loud.", 3),
	}
}

func ids[T interface{ GetID() string }](records []T) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.GetID()
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
