//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "alx_stays/internal/adapters/http_server"
	"alx_stays/internal/adapters/payment"
	"alx_stays/internal/app"
	"alx_stays/internal/client"
	"alx_stays/internal/domain"
	mysqlstore "alx_stays/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func TestHTTP_EndToEnd_SearchAndReviews(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=stays"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/stays?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	store := mysqlstore.New(db)
	ctx := context.Background()

	// Seed two listings
	for _, p := range []domain.Property{
		{
			ID: "e2e-1", Title: "Downtown Apartment", Description: "Central and bright.",
			Price: 100, Type: "apartment", Bedrooms: 2, MaxGuests: 4, Rating: 4.7,
			Location: domain.Location{Address: "1 Rue Test", City: "Paris", Country: "France"},
			Amenities: []string{"Wifi"}, Host: domain.Host{ID: "h1", Name: "Marie"},
		},
		{
			ID: "e2e-2", Title: "Hillside Villa", Description: "Room for the whole family.",
			Price: 300, Type: "villa", Bedrooms: 4, MaxGuests: 8, Rating: 4.9,
			Location: domain.Location{Address: "2 Via Test", City: "Nice", Country: "France"},
			Amenities: []string{"Pool"}, Host: domain.Host{ID: "h2", Name: "Luc"},
		},
	} {
		if err := store.UpsertProperty(ctx, p); err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}

	// Full server stack over the real store
	q := app.NewQueryService(store, nil, time.Minute)
	c := app.NewCommandService(store, nil, payment.NewSimulator(1, 1))
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q, C: c})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	api := client.NewAPI(ts.URL, 100)

	// minPrice filters down to the villa
	min := 150.0
	ps, err := api.SearchProperties(ctx, domain.Criteria{MinPrice: &min})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(ps) != 1 || ps[0].ID != "e2e-2" {
		t.Fatalf("minPrice=150 expected [e2e-2], got %+v", ps)
	}

	// submit a review through the API, read it back through the loader
	rv, err := api.SubmitReview(ctx, "e2e-1", app.ReviewInput{
		UserID: "u1", UserName: "Jane", Rating: "5",
		Comment: "Perfect base for exploring the city.",
	})
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if rv.ID == "" || rv.PropertyID != "e2e-1" {
		t.Fatalf("unexpected review: %+v", rv)
	}

	loader := client.NewReviewLoader(api.GetReviews)
	loader.Load(ctx, "e2e-1")
	if loader.State() != client.ReviewLoaded {
		t.Fatalf("loader state %v, err %q", loader.State(), loader.Err())
	}
	rs := loader.Reviews()
	if len(rs) != 1 || rs[0].Comment != "Perfect base for exploring the city." {
		t.Fatalf("unexpected reviews: %+v", rs)
	}

	// book through the API
	id, err := api.CreateBooking(ctx, domain.BookingInput{
		FirstName: "Jane", LastName: "Smith", Email: "jane@example.com",
		PhoneNumber: "+1 555 0100", CardNumber: "4242424242424242",
		ExpirationDate: "12/27", CVV: "123", BillingAddress: "123 Main St",
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if id == "" {
		t.Fatal("expected a booking id")
	}
}
