package models

import "time"

// Review is a guest experience shown on the reviews board.
type Review struct {
	ID        string    `json:"id"`
	Guest     string    `json:"guest"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Review) GetID() string {
	return r.ID
}

// ReviewForm is the raw, unvalidated input of the "add review" form.
// Every field is kept as text so that validation owns all parsing.
type ReviewForm struct {
	Guest  string `schema:"guest" json:"guest"`
	Title  string `schema:"title" json:"title"`
	Text   string `schema:"text" json:"text"`
	Rating string `schema:"rating" json:"rating"`
}

// IsZero reports whether nothing has been typed into the form yet.
func (f ReviewForm) IsZero() bool {
	return f == ReviewForm{}
}

// RawReview is a review row exactly as read from a CSV source, before cleaning.
type RawReview struct {
	ID        string
	Guest     string
	Title     string
	Text      string
	Rating    string
	CreatedAt string
}
