package services

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"hotel-booking/models"
)

const (
	MinRating  = 0.0
	MaxRating  = 5.0
	RatingStep = 0.5
)

var (
	ErrMissingFields     = errors.New("please fill all fields")
	ErrRatingNotNumber   = errors.New("rating must be a number")
	ErrRatingOutOfRange  = fmt.Errorf("rating must be between %g and %g", MinRating, MaxRating)
	ErrRatingGranularity = fmt.Errorf("rating must be a multiple of %g", RatingStep)
)

// ValidationError is the single, human-readable reason a submission was refused.
type ValidationError struct {
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Cause }

func invalid(cause error) *ValidationError {
	return &ValidationError{Reason: cause.Error(), Cause: cause}
}

var formDecoder = schema.NewDecoder()

func init() {
	formDecoder.IgnoreUnknownKeys(true)
}

// DecodeReviewForm maps submitted field values (guest, title, text, rating) onto a ReviewForm.
// Unknown fields are ignored; missing fields are left empty for Validate to report.
func DecodeReviewForm(values url.Values) (models.ReviewForm, error) {
	var form models.ReviewForm
	if err := formDecoder.Decode(&form, values); err != nil {
		return models.ReviewForm{}, fmt.Errorf("form: decode: %w", err)
	}
	return form, nil
}

// ParseRating reads a rating typed by a guest and checks it against the allowed scale.
func ParseRating(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(ErrRatingNotNumber)
	}
	if v < MinRating || v > MaxRating {
		return 0, invalid(ErrRatingOutOfRange)
	}
	if math.Mod(v, RatingStep) != 0 {
		return 0, invalid(ErrRatingGranularity)
	}
	return v, nil
}

// ParseThreshold reads a minimum-rating filter value. It accepts the same scale as ratings
// without the step restriction.
func ParseThreshold(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, invalid(ErrRatingNotNumber)
	}
	if v < MinRating || v > MaxRating {
		return 0, invalid(ErrRatingOutOfRange)
	}
	return v, nil
}

// ValidateReview checks a submitted form and returns the review it describes, without id
// or timestamp. Every refusal is a *ValidationError.
func ValidateReview(form models.ReviewForm) (models.Review, error) {
	guest := normaliseText(form.Guest)
	title := normaliseText(form.Title)
	text := strings.TrimSpace(form.Text)
	rating := strings.TrimSpace(form.Rating)

	if guest == "" || title == "" || text == "" || rating == "" {
		return models.Review{}, invalid(ErrMissingFields)
	}

	value, err := ParseRating(rating)
	if err != nil {
		return models.Review{}, err
	}

	return models.Review{
		Guest:  guest,
		Title:  title,
		Text:   text,
		Rating: value,
	}, nil
}
