package services

import (
	"fmt"
	"time"

	"hotel-booking/models"
	"hotel-booking/storage"
	"hotel-booking/utils"
)

// RoomBoard is the room listing: a read-only catalog queried by facets.
type RoomBoard struct {
	rooms  *storage.Collection[*models.Room]
	engine *Engine[*models.Room]
}

// NewRoomBoard seeds the room listing from a catalog.
func NewRoomBoard(rooms []*models.Room, logger *utils.Logger) *RoomBoard {
	return &RoomBoard{
		rooms:  storage.NewCollection(rooms, logger),
		engine: NewEngine(RoomFacets),
	}
}

// View returns the rooms visible under state.
func (b *RoomBoard) View(state ViewState) View[*models.Room] {
	return b.engine.View(b.rooms.All(), state.Filter, state.Sort)
}

func (b *RoomBoard) Get(id string) (*models.Room, bool) {
	return b.rooms.Get(id)
}

func (b *RoomBoard) Len() int {
	return b.rooms.Len()
}

// ReviewBoard is the guest experiences board: a growing collection of reviews
// that accepts validated submissions.
type ReviewBoard struct {
	reviews *storage.Collection[*models.Review]
	engine  *Engine[*models.Review]
	ids     IDSource
	now     func() time.Time
	logger  *utils.Logger
}

// ReviewBoardOption customises a ReviewBoard.
type ReviewBoardOption func(*ReviewBoard)

// WithIDs replaces the default time-ordered id source.
func WithIDs(ids IDSource) ReviewBoardOption {
	return func(b *ReviewBoard) { b.ids = ids }
}

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) ReviewBoardOption {
	return func(b *ReviewBoard) { b.now = now }
}

// NewReviewBoard seeds the experiences board.
func NewReviewBoard(seed []*models.Review, logger *utils.Logger, opts ...ReviewBoardOption) *ReviewBoard {
	b := &ReviewBoard{
		reviews: storage.NewCollection(seed, logger),
		engine:  NewEngine(ReviewFacets),
		ids:     TimeOrderedIDs(),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// View returns the reviews visible under state, newest first.
func (b *ReviewBoard) View(state ViewState) View[*models.Review] {
	return b.engine.View(b.reviews.All(), state.Filter, state.Sort)
}

func (b *ReviewBoard) Len() int {
	return b.reviews.Len()
}

func (b *ReviewBoard) Get(id string) (*models.Review, bool) {
	return b.reviews.Get(id)
}

// Submit validates form and, on success, prepends the new review, highlights it
// and clears the draft. On failure nothing is stored, the highlight is untouched
// and the form is kept as the draft so the guest can correct it.
func (b *ReviewBoard) Submit(state ViewState, form models.ReviewForm) (ViewState, *models.Review, error) {
	review, err := ValidateReview(form)
	if err != nil {
		state.Draft = form
		b.logger.Debug("[reviews] Submission refused: %v", err)
		return state, nil, err
	}

	id, err := b.ids()
	if err != nil {
		state.Draft = form
		return state, nil, fmt.Errorf("reviews: mint id: %w", err)
	}
	review.ID = id
	review.CreatedAt = b.now()

	stored := review
	total, err := b.reviews.Insert(&stored)
	if err != nil {
		state.Draft = form
		return state, nil, fmt.Errorf("reviews: insert: %w", err)
	}

	b.logger.Info("[reviews] Added review %s by %s (%d total)", id, stored.Guest, total)
	state.Selection = state.Selection.Activate(id)
	state.Draft = models.ReviewForm{}
	return state, &stored, nil
}

// SubmitDraft submits the form currently held in state.
func (b *ReviewBoard) SubmitDraft(state ViewState) (ViewState, *models.Review, error) {
	return b.Submit(state, state.Draft)
}
