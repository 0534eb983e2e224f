package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"alx_stays/internal/domain"
)

// ReviewState is the lifecycle of a review load. NotStarted is distinct
// from Loading: with no property id there is nothing to fetch.
type ReviewState int

const (
	ReviewNotStarted ReviewState = iota
	ReviewLoading
	ReviewLoaded
	ReviewFailed
)

type ReviewsFunc func(ctx context.Context, propertyID string) ([]domain.Review, error)

// ReviewLoader fetches the reviews for one property, once per id change.
// No debounce: id changes are one-per-navigation. A failed fetch keeps a
// user-facing message and is not retried automatically.
type ReviewLoader struct {
	fetch ReviewsFunc

	mu      sync.Mutex
	state   ReviewState
	lastID  string
	reviews []domain.Review
	errMsg  string
}

func NewReviewLoader(fetch ReviewsFunc) *ReviewLoader {
	return &ReviewLoader{fetch: fetch}
}

// Load fetches reviews for propertyID. An empty id is a no-op that leaves
// the loader in NotStarted; the same id is not re-fetched once loaded.
func (l *ReviewLoader) Load(ctx context.Context, propertyID string) {
	l.mu.Lock()
	if propertyID == "" {
		l.state = ReviewNotStarted
		l.mu.Unlock()
		return
	}
	if propertyID == l.lastID && l.state == ReviewLoaded {
		l.mu.Unlock()
		return
	}
	l.lastID = propertyID
	l.state = ReviewLoading
	l.mu.Unlock()

	rs, err := l.fetch(ctx, propertyID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if propertyID != l.lastID {
		return // superseded by a newer navigation
	}
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("review fetch failed")
		l.state = ReviewFailed
		l.errMsg = "Failed to load reviews. Please try again later."
		l.reviews = nil
		return
	}
	l.state = ReviewLoaded
	l.errMsg = ""
	l.reviews = rs
}

func (l *ReviewLoader) State() ReviewState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *ReviewLoader) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

// Reviews returns a copy of the loaded list; empty is a valid loaded state.
func (l *ReviewLoader) Reviews() []domain.Review {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Review, len(l.reviews))
	copy(out, l.reviews)
	return out
}
