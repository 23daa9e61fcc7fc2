package models

import "time"

// Hotel holds the display-only details of the property a room belongs to.
type Hotel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Owner   string `json:"owner,omitempty"`
}

// RawRoom is a catalog row exactly as read from a CSV source, before cleaning.
type RawRoom struct {
	ID        string
	HotelName string
	Address   string
	City      string
	RoomType  string
	RawPrice  string
	Amenities string
	Images    string
	Available string
}

// Room is a bookable room in the catalog. Rooms are read-only once seeded.
type Room struct {
	ID            string    `json:"id"`
	Hotel         Hotel     `json:"hotel"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images,omitempty"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *Room) GetID() string {
	return r.ID
}
