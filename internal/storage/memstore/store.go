// Package memstore is the fixture-backed PropertyStore used in development
// and tests. Data is loaded from an embedded JSON file; reviews and
// bookings written during a run live only until the process exits.
package memstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"alx_stays/internal/domain"
)

//go:embed fixtures.json
var fixturesJSON []byte

// fixtureProperty is a Property with its reviews nested the way the
// fixture file carries them.
type fixtureProperty struct {
	domain.Property
	Reviews []domain.Review `json:"reviews"`
}

type Store struct {
	mu       sync.RWMutex
	props    []domain.Property
	reviews  map[string][]domain.Review
	bookings []domain.Booking
}

// New loads the embedded fixture set.
func New() (*Store, error) {
	var fixtures []fixtureProperty
	if err := json.Unmarshal(fixturesJSON, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return fromFixtures(fixtures)
}

// fromFixtures keeps insertion order for properties and newest-first
// order for reviews.
func fromFixtures(fixtures []fixtureProperty) (*Store, error) {
	s := &Store{reviews: map[string][]domain.Review{}}
	for _, f := range fixtures {
		if f.ID == "" {
			return nil, fmt.Errorf("fixture property without id")
		}
		s.props = append(s.props, f.Property)
		rs := append([]domain.Review(nil), f.Reviews...)
		sortNewestFirst(rs)
		s.reviews[f.ID] = rs
	}
	return s, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, len(s.props))
	copy(out, s.props)
	return out, nil
}

func (s *Store) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.props {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func (s *Store) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rs := s.reviews[propertyID]
	out := make([]domain.Review, len(rs))
	copy(out, rs)
	return out, nil
}

func (s *Store) AddReview(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.PropertyID] = append([]domain.Review{r}, s.reviews[r.PropertyID]...)
	for i := range s.props {
		if s.props[i].ID == r.PropertyID {
			s.props[i].ReviewCount++
			break
		}
	}
	return nil
}

func (s *Store) SaveBooking(ctx context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return nil
}

func sortNewestFirst(rs []domain.Review) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}
