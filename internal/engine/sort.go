package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// SortKey names a sortable column. The set is closed: string keys use a
// locale-aware comparator, numeric keys use numeric difference, and an
// unknown key compares everything equal so the input order survives.
type SortKey string

const (
	SortByModel       SortKey = "model"
	SortByBrand       SortKey = "brand"
	SortByStyle       SortKey = "style"
	SortByUse         SortKey = "use"
	SortByGender      SortKey = "gender"
	SortByStatus      SortKey = "status"
	SortByDemand      SortKey = "demand"
	SortByID          SortKey = "id"
	SortByPrice       SortKey = "price"
	SortByResalePrice SortKey = "resalePrice"
	SortByPremium     SortKey = "premium"
	SortByColorways   SortKey = "colorways"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort returns a new list ordered by key. The sort is stable, so
// records with equal keys keep their relative input order.
func Sort(records []models.SneakerRecord, key SortKey, dir Direction) []models.SneakerRecord {
	out := make([]models.SneakerRecord, len(records))
	copy(out, records)

	cmp := comparatorFor(key)
	if cmp == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(key SortKey) func(a, b models.SneakerRecord) int {
	if field, ok := stringFields[key]; ok {
		coll := collate.New(language.English)
		return func(a, b models.SneakerRecord) int {
			return coll.CompareString(field(a), field(b))
		}
	}
	if field, ok := numericFields[key]; ok {
		return func(a, b models.SneakerRecord) int {
			av, bv := field(a), field(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}
	return nil
}

var stringFields = map[SortKey]func(models.SneakerRecord) string{
	SortByModel:  func(r models.SneakerRecord) string { return r.Model },
	SortByBrand:  func(r models.SneakerRecord) string { return r.Brand },
	SortByStyle:  func(r models.SneakerRecord) string { return r.Style },
	SortByUse:    func(r models.SneakerRecord) string { return r.Use },
	SortByGender: func(r models.SneakerRecord) string { return r.Gender },
	SortByStatus: func(r models.SneakerRecord) string { return r.Status },
	SortByDemand: func(r models.SneakerRecord) string { return r.Demand },
}

var numericFields = map[SortKey]func(models.SneakerRecord) float64{
	SortByID:          func(r models.SneakerRecord) float64 { return float64(r.ID) },
	SortByPrice:       func(r models.SneakerRecord) float64 { return r.Price },
	SortByResalePrice: func(r models.SneakerRecord) float64 { return r.ResalePrice },
	SortByPremium:     func(r models.SneakerRecord) float64 { return float64(r.Premium) },
	SortByColorways:   func(r models.SneakerRecord) float64 { return float64(r.Colorways) },
}
