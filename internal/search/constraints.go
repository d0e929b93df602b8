package search

import (
	"regexp"
	"strconv"
)

var (
	// "under 5000", "under R5000"
	budgetPattern = regexp.MustCompile(`(?i)\bunder\s+[a-z]?(\d+)`)

	// "4 stars", "4.5 star", "4+ stars", "+4 stars"
	ratingPattern = regexp.MustCompile(`(?i)\+?(\d+(?:\.\d+)?)\+?\s*stars?\b`)
)

// Constraints are the limits embedded in the free text of a query
type Constraints struct {
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
}

// ExtractConstraints parses the price ceiling and minimum rating out of query.
// Text that does not match either pattern yields no constraint.
func ExtractConstraints(query string) Constraints {
	var c Constraints

	if m := budgetPattern.FindStringSubmatch(query); m != nil {
		if budget, err := strconv.Atoi(m[1]); err == nil {
			v := float64(budget)
			c.MaxPrice = &v
		}
	}

	if m := ratingPattern.FindStringSubmatch(query); m != nil {
		if rating, err := strconv.ParseFloat(m[1], 64); err == nil {
			c.MinRating = &rating
		}
	}

	return c
}

// Empty reports whether no constraint was found
func (c Constraints) Empty() bool {
	return c.MaxPrice == nil && c.MinRating == nil
}
