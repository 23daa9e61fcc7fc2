package storage

import (
	"context"
	"time"

	"hotel-booking/models"
)

var _ CatalogSource = StaticCatalog{}

// StaticCatalog serves the built-in sample catalog.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

func (StaticCatalog) LoadRooms(ctx context.Context) ([]*models.Room, error) {
	return SampleRooms(), nil
}

func (StaticCatalog) LoadReviews(ctx context.Context) ([]*models.Review, error) {
	return SampleReviews(), nil
}

func (StaticCatalog) Close() error { return nil }

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

var (
	urbanza = models.Hotel{Name: "Urbanza Suites", Address: "Main Road 123 Downtown", City: "New York", Owner: "GreatStack"}
	harbour = models.Hotel{Name: "Harbour View Inn", Address: "7 Pier Street", City: "Mumbai", Owner: "Harbour Group"}
	alpine  = models.Hotel{Name: "Alpine Lodge", Address: "22 Ridge Lane", City: "Zurich", Owner: "Alpine AG"}
	palm    = models.Hotel{Name: "Palm Court Resort", Address: "Beach Boulevard 5", City: "Goa", Owner: "Palm Hospitality"}
)

// SampleRooms returns a fresh copy of the sample rooms.
func SampleRooms() []*models.Room {
	return []*models.Room{
		{ID: "67f7647c197ac559e4089b96", Hotel: urbanza, RoomType: "Double Bed", PricePerNight: 399,
			Amenities: []string{"Room Service", "Mountain View", "Pool Access"}, Images: []string{"roomImg1.png"},
			IsAvailable: true, CreatedAt: day("2025-04-10")},
		{ID: "67f76452197ac559e4089b8e", Hotel: urbanza, RoomType: "Double Bed", PricePerNight: 299,
			Amenities: []string{"Room Service", "Mountain View", "Pool Access"}, Images: []string{"roomImg2.png"},
			IsAvailable: true, CreatedAt: day("2025-04-10")},
		{ID: "67f76406197ac559e4089b82", Hotel: urbanza, RoomType: "Single Bed", PricePerNight: 249,
			Amenities: []string{"Free WiFi", "Free Breakfast", "Room Service"}, Images: []string{"roomImg3.png"},
			IsAvailable: true, CreatedAt: day("2025-04-10")},
		{ID: "67f763d8197ac559e4089b7a", Hotel: urbanza, RoomType: "Luxury Bed", PricePerNight: 1299,
			Amenities: []string{"Free WiFi", "Room Service", "Pool Access"}, Images: []string{"roomImg4.png"},
			IsAvailable: true, CreatedAt: day("2025-04-10")},
		{ID: "6801a1f0c2b3a4d5e6f70811", Hotel: harbour, RoomType: "Family Suite", PricePerNight: 750,
			Amenities: []string{"Free WiFi", "Free Breakfast", "Sea View"}, Images: []string{"roomImg5.png"},
			IsAvailable: true, CreatedAt: day("2025-05-02")},
		{ID: "6801a1f0c2b3a4d5e6f70812", Hotel: harbour, RoomType: "Single Bed", PricePerNight: 500,
			Amenities: []string{"Free WiFi"}, Images: []string{"roomImg6.png"},
			IsAvailable: false, CreatedAt: day("2025-05-02")},
		{ID: "6801a1f0c2b3a4d5e6f70813", Hotel: alpine, RoomType: "Luxury Bed", PricePerNight: 2450,
			Amenities: []string{"Mountain View", "Room Service", "Spa"}, Images: []string{"roomImg7.png"},
			IsAvailable: true, CreatedAt: day("2025-06-18")},
		{ID: "6801a1f0c2b3a4d5e6f70814", Hotel: palm, RoomType: "Family Suite", PricePerNight: 1800,
			Amenities: []string{"Pool Access", "Free Breakfast", "Beach Access"}, Images: []string{"roomImg8.png"},
			IsAvailable: true, CreatedAt: day("2025-07-21")},
	}
}

// SampleReviews returns a fresh copy of the sample experiences. The sample repeats
// its two reviews under the same ids; collections keep only the first of each.
func SampleReviews() []*models.Review {
	return []*models.Review{
		{ID: "1", Guest: "Rahul Patil", Title: "Great stay, clean rooms",
			Text: "Stayed for 2 nights. Staff was friendly and breakfast was excellent.", Rating: 4.5, CreatedAt: day("2025-09-12")},
		{ID: "2", Guest: "Anita Deshpande", Title: "Lovely rooftop view",
			Text: "Awesome rooftop seating and quick service. Will come again!", Rating: 5, CreatedAt: day("2025-08-02")},
		{ID: "1", Guest: "Rahul Patil", Title: "Great stay, clean rooms",
			Text: "Stayed for 2 nights. Staff was friendly and breakfast was excellent.", Rating: 4.5, CreatedAt: day("2025-09-12")},
		{ID: "2", Guest: "Anita Deshpande", Title: "Lovely rooftop view",
			Text: "Awesome rooftop seating and quick service. Will come again!", Rating: 5, CreatedAt: day("2025-08-02")},
	}
}
