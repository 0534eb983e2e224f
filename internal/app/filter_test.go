package app_test

import (
	"reflect"
	"testing"

	"alx_stays/internal/app"
	"alx_stays/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sample() []domain.Property {
	return []domain.Property{
		{
			ID: "1", Title: "Modern Apartment in Downtown",
			Description: "Beautiful modern apartment in the heart of the city.",
			Price:       100, Type: "apartment", Bedrooms: 2, Rating: 4.8,
			Location: domain.Location{City: "Paris", Country: "France"},
		},
		{
			ID: "2", Title: "Seaside Villa",
			Description: "Spacious villa with a sea view.",
			Price:       300, Type: "villa", Bedrooms: 4, Rating: 4.2,
			Location: domain.Location{City: "Nice", Country: "France"},
		},
		{
			ID: "3", Title: "Cozy Cabin",
			Description: "Quiet cabin in the woods.",
			Price:       80, Type: "cabin", Bedrooms: 1, Rating: 3.9,
			Location: domain.Location{City: "New York", Country: "USA"},
		},
	}
}

func ids(ps []domain.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFilter_Identity(t *testing.T) {
	ps := sample()
	got := app.Filter(ps, domain.Criteria{})
	if !reflect.DeepEqual(got, ps) {
		t.Fatalf("unset criteria must be identity, got %v", ids(got))
	}
}

func TestFilter_MinPrice(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{MinPrice: ptr(150.0)})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("minPrice=150 expected [2], got %v", ids(got))
	}
	for _, p := range got {
		if p.Price < 150 {
			t.Fatalf("property %s below min price", p.ID)
		}
	}
}

func TestFilter_MaxPrice(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{MaxPrice: ptr(100.0)})
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Fatalf("maxPrice=100 expected [1 3], got %v", ids(got))
	}
}

func TestFilter_PropertyType_CaseInsensitive(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{PropertyType: "Apartment"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("type=Apartment expected [1], got %v", ids(got))
	}
}

func TestFilter_MinBedrooms(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{MinBedrooms: ptr(2)})
	if !reflect.DeepEqual(ids(got), []string{"1", "2"}) {
		t.Fatalf("bedrooms>=2 expected [1 2], got %v", ids(got))
	}
}

func TestFilter_MinRating(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{MinRating: ptr(4.5)})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("rating>=4.5 expected [1], got %v", ids(got))
	}
}

func TestFilter_Search(t *testing.T) {
	// "new" matches city "New York" by substring, case-insensitively
	got := app.Filter(sample(), domain.Criteria{Search: "new"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf(`search "new" expected [3], got %v`, ids(got))
	}

	// "paris" matches the city field even though title/description don't
	got = app.Filter(sample(), domain.Criteria{Search: "paris"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf(`search "paris" expected [1], got %v`, ids(got))
	}

	// no field matches -> excluded, empty result is still a valid result
	got = app.Filter(sample(), domain.Criteria{Search: "tokyo"})
	if len(got) != 0 {
		t.Fatalf(`search "tokyo" expected [], got %v`, ids(got))
	}
}

func TestFilter_Compose_AND(t *testing.T) {
	c := domain.Criteria{Search: "france", MinPrice: ptr(150.0)}
	got := app.Filter(sample(), c)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("composed criteria expected [2], got %v", ids(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	c := domain.Criteria{MaxPrice: ptr(200.0)}
	once := app.Filter(sample(), c)
	twice := app.Filter(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilter_OrderPreserving(t *testing.T) {
	got := app.Filter(sample(), domain.Criteria{MaxPrice: ptr(500.0)})
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3"}) {
		t.Fatalf("relative order not preserved: %v", ids(got))
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	ps := sample()
	got := app.Filter(ps, domain.Criteria{})
	got[0].Title = "mutated"
	if ps[0].Title == "mutated" {
		t.Fatal("identity result must not alias the input slice")
	}
}
