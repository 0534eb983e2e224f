package domain

// Criteria is the set of active filter constraints for a property search.
// Nil/empty fields mean "no constraint". A Criteria is built once per
// state change and never mutated mid-pass.
type Criteria struct {
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType string
	MinBedrooms  *int
	MinRating    *float64
}

// IsZero reports whether no predicate is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.MinPrice == nil && c.MaxPrice == nil &&
		c.PropertyType == "" && c.MinBedrooms == nil && c.MinRating == nil
}
