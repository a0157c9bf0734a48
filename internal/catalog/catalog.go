// Package catalog holds the static sneaker catalog. The data is
// bundled into the binary and read-only for the lifetime of the
// process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

//go:embed data/sneakers.json
var sneakersJSON []byte

type Catalog struct {
	records []models.SneakerRecord
	byID    map[int]models.SneakerRecord
}

// FilterOptions lists the distinct values available for each
// categorical filter dimension, sorted ascending.
type FilterOptions struct {
	Uses         []string `json:"uses"`
	Brands       []string `json:"brands"`
	Styles       []string `json:"styles"`
	DemandLevels []string `json:"demandLevels"`
	Genders      []string `json:"genders"`
	Statuses     []string `json:"statuses"`
}

func Load() (*Catalog, error) {
	var records []models.SneakerRecord
	if err := json.Unmarshal(sneakersJSON, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[int]models.SneakerRecord, len(records))
	for _, r := range records {
		if _, exists := byID[r.ID]; exists {
			return nil, fmt.Errorf("duplicate sneaker id %d", r.ID)
		}
		byID[r.ID] = r
	}

	return &Catalog{records: records, byID: byID}, nil
}

// All returns the catalog in its original order. The returned slice is
// a copy; callers may reorder it freely.
func (c *Catalog) All() []models.SneakerRecord {
	out := make([]models.SneakerRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Get(id int) (models.SneakerRecord, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c *Catalog) Size() int {
	return len(c.records)
}

// IDs returns all sneaker ids in catalog order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

// Options extracts the distinct categorical values for the filter
// panel.
func (c *Catalog) Options() FilterOptions {
	return FilterOptions{
		Uses:         c.distinct(func(r models.SneakerRecord) string { return r.Use }),
		Brands:       c.distinct(func(r models.SneakerRecord) string { return r.Brand }),
		Styles:       c.distinct(func(r models.SneakerRecord) string { return r.Style }),
		DemandLevels: c.distinct(func(r models.SneakerRecord) string { return r.Demand }),
		Genders:      c.distinct(func(r models.SneakerRecord) string { return r.Gender }),
		Statuses:     c.distinct(func(r models.SneakerRecord) string { return r.Status }),
	}
}

func (c *Catalog) distinct(field func(models.SneakerRecord) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range c.records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
