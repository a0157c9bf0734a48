// Package engine implements the pure filter and sort passes over the
// catalog. Both are side-effect free and preserve catalog order for
// equal keys.
package engine

import (
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// Filter returns the records matching every criterion, in input order.
// Ranges are inclusive on both ends. A categorical dimension with an
// empty accepted set matches everything.
func Filter(records []models.SneakerRecord, criteria models.FilterCriteria) []models.SneakerRecord {
	var out []models.SneakerRecord
	for _, r := range records {
		if matches(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.SneakerRecord, c models.FilterCriteria) bool {
	if r.Price < c.PriceRange[0] || r.Price > c.PriceRange[1] {
		return false
	}
	if r.Premium < c.PremiumRange[0] || r.Premium > c.PremiumRange[1] {
		return false
	}
	if !accepts(c.Uses, r.Use) {
		return false
	}
	if !accepts(c.Brands, r.Brand) {
		return false
	}
	if !accepts(c.Styles, r.Style) {
		return false
	}
	if !accepts(c.DemandLevels, r.Demand) {
		return false
	}
	if !accepts(c.Genders, r.Gender) {
		return false
	}
	if !accepts(c.Statuses, r.Status) {
		return false
	}
	return true
}

func accepts(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
