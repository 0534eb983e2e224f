// Package client is the consumer-side core of the listing app: an API
// client for the property endpoints, the search/filter controller that
// owns debounced fetching and favorites, and the review loader.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"alx_stays/internal/app"
	"alx_stays/internal/domain"
)

// API talks to the property service. The base URL is the single tunable
// the client core depends on.
type API struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewAPI(base string, rps int) *API {
	if rps <= 0 {
		rps = 10
	}
	return &API{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// SearchProperties queries /properties with only the set criteria encoded.
func (a *API) SearchProperties(ctx context.Context, c domain.Criteria) ([]domain.Property, error) {
	q := url.Values{}
	if c.Search != "" {
		q.Set("search", c.Search)
	}
	if c.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*c.MinPrice, 'f', -1, 64))
	}
	if c.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*c.MaxPrice, 'f', -1, 64))
	}
	if c.PropertyType != "" {
		q.Set("propertyType", c.PropertyType)
	}
	if c.MinBedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*c.MinBedrooms))
	}
	if c.MinRating != nil {
		q.Set("minRating", strconv.FormatFloat(*c.MinRating, 'f', -1, 64))
	}
	u := a.base + "/properties"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	var out []domain.Property
	if err := a.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	var out domain.Property
	err := a.get(ctx, a.base+"/properties/"+url.PathEscape(id), &out)
	return out, err
}

// GetReviews unwraps the {success, data} envelope.
func (a *API) GetReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    []domain.Review `json:"data"`
		Message string          `json:"message"`
	}
	if err := a.get(ctx, a.base+"/properties/"+url.PathEscape(propertyID)+"/reviews", &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("reviews request rejected: %s", env.Message)
	}
	return env.Data, nil
}

func (a *API) SubmitReview(ctx context.Context, propertyID string, in app.ReviewInput) (domain.Review, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    []domain.Review `json:"data"`
	}
	u := a.base + "/properties/" + url.PathEscape(propertyID) + "/reviews"
	if err := a.post(ctx, u, in, &env); err != nil {
		return domain.Review{}, err
	}
	if !env.Success || len(env.Data) == 0 {
		return domain.Review{}, fmt.Errorf("review submission returned no data")
	}
	return env.Data[0], nil
}

func (a *API) CreateBooking(ctx context.Context, in domain.BookingInput) (string, error) {
	var out struct {
		Success   bool   `json:"success"`
		BookingID string `json:"bookingId"`
	}
	if err := a.post(ctx, a.base+"/bookings", in, &out); err != nil {
		return "", err
	}
	return out.BookingID, nil
}

func (a *API) get(ctx context.Context, u string, out any) error {
	if err := a.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return a.do(req, out)
}

func (a *API) post(ctx context.Context, u string, body, out any) error {
	if err := a.rl.Wait(ctx); err != nil {
		return err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return a.do(req, out)
}

func (a *API) do(req *http.Request, out any) error {
	resp, err := a.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound
	case resp.StatusCode >= 400:
		// surface the problem detail when the server sent one
		var p struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(b, &p) == nil && p.Title != "" {
			return fmt.Errorf("%s (%d): %s", p.Title, resp.StatusCode, p.Detail)
		}
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
