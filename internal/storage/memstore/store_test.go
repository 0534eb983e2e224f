package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"alx_stays/internal/domain"
	"alx_stays/internal/storage/memstore"
)

func TestNew_LoadsFixtures(t *testing.T) {
	s, err := memstore.New()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	ps, err := s.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(ps) == 0 {
		t.Fatal("fixture set must not be empty")
	}
	// insertion order is the stable order the filter relies on
	if ps[0].ID != "1" {
		t.Fatalf("expected fixture 1 first, got %s", ps[0].ID)
	}
}

func TestGetProperty_NotFound(t *testing.T) {
	s, _ := memstore.New()
	_, err := s.GetProperty(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReviews_NewestFirst(t *testing.T) {
	s, _ := memstore.New()
	rs, err := s.ListReviews(context.Background(), "3")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(rs))
	}
	if rs[0].CreatedAt.Before(rs[1].CreatedAt) {
		t.Fatal("reviews must be newest-first")
	}
}

func TestListReviews_EmptyForUnknownProperty(t *testing.T) {
	s, _ := memstore.New()
	rs, err := s.ListReviews(context.Background(), "unknown")
	if err != nil || len(rs) != 0 {
		t.Fatalf("expected empty list, got %v, %v", rs, err)
	}
}

func TestAddReview_PrependsAndBumpsCount(t *testing.T) {
	s, _ := memstore.New()
	ctx := context.Background()
	before, _ := s.GetProperty(ctx, "1")

	rv := domain.Review{
		ID: "new", PropertyID: "1", UserID: "u9", UserName: "Pat",
		Rating: 4, Comment: "Comfortable and quiet stay.",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.AddReview(ctx, rv); err != nil {
		t.Fatalf("err: %v", err)
	}
	rs, _ := s.ListReviews(ctx, "1")
	if rs[0].ID != "new" {
		t.Fatalf("new review must lead the list, got %s", rs[0].ID)
	}
	after, _ := s.GetProperty(ctx, "1")
	if after.ReviewCount != before.ReviewCount+1 {
		t.Fatalf("review count not bumped: %d -> %d", before.ReviewCount, after.ReviewCount)
	}
}

func TestListProperties_ReturnsCopy(t *testing.T) {
	s, _ := memstore.New()
	ps, _ := s.ListProperties(context.Background())
	ps[0].Title = "mutated"
	again, _ := s.ListProperties(context.Background())
	if again[0].Title == "mutated" {
		t.Fatal("callers must not be able to mutate the store's slice")
	}
}
