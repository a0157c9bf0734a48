package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

func testRecords() []models.SneakerRecord {
	return []models.SneakerRecord{
		{ID: 1, Model: "Alpha", Brand: "Nike", Style: "Retro", Price: 100, Premium: 20, Use: "Lifestyle", Gender: "Men", Status: "Available", Demand: "High"},
		{ID: 2, Model: "Beta", Brand: "adidas", Style: "Classic", Price: 150, Premium: -10, Use: "Running", Gender: "Women", Status: "Limited", Demand: "Low"},
		{ID: 3, Model: "Gamma", Brand: "Nike", Style: "Classic", Price: 200, Premium: 50, Use: "Lifestyle", Gender: "Unisex", Status: "Sold Out", Demand: "Very High"},
	}
}

func TestFilterDefaultCriteriaIsIdentity(t *testing.T) {
	records := testRecords()
	out := Filter(records, models.DefaultCriteria())
	assert.Equal(t, records, out)
}

func TestFilterPriceRangeScenario(t *testing.T) {
	// Catalog of 3 records priced [100, 150, 200]; priceRange=[120,300]
	// keeps exactly the 150 and 200 records, in original order.
	criteria := models.DefaultCriteria()
	criteria.PriceRange = [2]float64{120, 300}

	out := Filter(testRecords(), criteria)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, 3, out[1].ID)
}

func TestFilterPriceRangeInclusiveBounds(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.PriceRange = [2]float64{100, 200}

	out := Filter(testRecords(), criteria)
	assert.Len(t, out, 3)
}

func TestFilterPremiumRange(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.PremiumRange = [2]int{0, 30}

	out := Filter(testRecords(), criteria)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
}

func TestFilterEmptyCategoricalSetMatchesEverything(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Brands = nil

	out := Filter(testRecords(), criteria)
	assert.Len(t, out, 3)
}

func TestFilterCategoricalMembership(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Brands = []string{"Nike"}

	out := Filter(testRecords(), criteria)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Nike", r.Brand)
	}
}

func TestFilterConditionsAreANDed(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Brands = []string{"Nike"}
	criteria.Styles = []string{"Classic"}

	out := Filter(testRecords(), criteria)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestFilterAllDimensionsActive(t *testing.T) {
	criteria := models.FilterCriteria{
		PriceRange:   [2]float64{100, 200},
		PremiumRange: [2]int{40, 60},
		Uses:         []string{"Lifestyle"},
		Brands:       []string{"Nike"},
		Styles:       []string{"Classic"},
		DemandLevels: []string{"Very High"},
		Genders:      []string{"Unisex"},
		Statuses:     []string{"Sold Out"},
	}

	out := Filter(testRecords(), criteria)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}

func TestFilterNoMatches(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Brands = []string{"Reebok"}

	out := Filter(testRecords(), criteria)
	assert.Empty(t, out)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := testRecords()
	criteria := models.DefaultCriteria()
	criteria.Brands = []string{"Nike"}

	Filter(records, criteria)
	assert.Equal(t, testRecords(), records)
}
