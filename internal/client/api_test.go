package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alx_stays/internal/client"
	"alx_stays/internal/domain"
)

func TestAPI_SearchProperties_EncodesOnlySetCriteria(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.Property{{ID: "1"}})
	}))
	defer ts.Close()

	api := client.NewAPI(ts.URL, 100)
	min := 100.0
	ps, err := api.SearchProperties(context.Background(), domain.Criteria{
		Search:   "paris",
		MinPrice: &min,
	})
	if err != nil || len(ps) != 1 {
		t.Fatalf("got %v, %v", ps, err)
	}
	if gotQuery != "minPrice=100&search=paris" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}

	_, _ = api.SearchProperties(context.Background(), domain.Criteria{})
	if gotQuery != "" {
		t.Fatalf("unset criteria must encode nothing, got %q", gotQuery)
	}
}

func TestAPI_GetProperty_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	api := client.NewAPI(ts.URL, 100)
	_, err := api.GetProperty(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAPI_GetReviews_UnwrapsEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties/7/reviews" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []domain.Review{{ID: "r1", PropertyID: "7"}},
		})
	}))
	defer ts.Close()

	api := client.NewAPI(ts.URL, 100)
	rs, err := api.GetReviews(context.Background(), "7")
	if err != nil || len(rs) != 1 || rs[0].ID != "r1" {
		t.Fatalf("got %v, %v", rs, err)
	}
}

func TestAPI_ServerProblemSurfacedAsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"title": "Internal Server Error", "status": 500})
	}))
	defer ts.Close()

	api := client.NewAPI(ts.URL, 100)
	_, err := api.SearchProperties(context.Background(), domain.Criteria{})
	if err == nil {
		t.Fatal("expected error on 500")
	}
}
