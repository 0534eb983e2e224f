package httpserver

import (
	"net/url"
	"strconv"
	"strings"

	"alx_stays/internal/domain"
)

// ParseCriteria builds filter criteria from query parameters. Malformed
// numeric values are treated as unset rather than rejected, keeping the
// query total; the parse never fails.
func ParseCriteria(q url.Values) domain.Criteria {
	c := domain.Criteria{
		Search:       strings.TrimSpace(q.Get("search")),
		PropertyType: strings.TrimSpace(q.Get("propertyType")),
	}
	c.MinPrice = parseFloat(q.Get("minPrice"))
	c.MaxPrice = parseFloat(q.Get("maxPrice"))
	c.MinBedrooms = parseInt(q.Get("bedrooms"))
	c.MinRating = parseFloat(q.Get("minRating"))
	return c
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
