package app

import (
	"strings"

	"alx_stays/internal/domain"
)

// Filter returns the ordered subsequence of ps satisfying every set
// predicate in c. It is pure and stable: surviving elements keep their
// relative input order, and an empty result is a valid result, not an
// error. Unset predicates pass everything through.
//
// Cheap numeric comparisons run before the substring search so a narrow
// price/type filter short-circuits most of the text scanning.
func Filter(ps []domain.Property, c domain.Criteria) []domain.Property {
	if c.IsZero() {
		out := make([]domain.Property, len(ps))
		copy(out, ps)
		return out
	}

	term := strings.ToLower(c.Search)
	ptype := strings.ToLower(c.PropertyType)

	out := make([]domain.Property, 0, len(ps))
	for _, p := range ps {
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		if ptype != "" && strings.ToLower(p.Type) != ptype {
			continue
		}
		if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
			continue
		}
		if c.MinRating != nil && p.Rating < *c.MinRating {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch does a case-insensitive substring match against title,
// description, city and country. Any one hit is a match.
func matchesSearch(p domain.Property, lowerTerm string) bool {
	for _, f := range [4]string{p.Title, p.Description, p.Location.City, p.Location.Country} {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}
