package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

func sortInput() []models.SneakerRecord {
	return []models.SneakerRecord{
		{ID: 1, Model: "Zulu", Brand: "Puma", Price: 120},
		{ID: 2, Model: "Alpha", Brand: "adidas", Price: 80},
		{ID: 3, Model: "Mike", Brand: "Nike", Price: 200},
		{ID: 4, Model: "Bravo", Brand: "adidas", Price: 80},
	}
}

func TestSortPreservesLength(t *testing.T) {
	out := Sort(sortInput(), SortByPrice, Ascending)
	assert.Len(t, out, 4)
}

func TestSortNumericAscending(t *testing.T) {
	out := Sort(sortInput(), SortByPrice, Ascending)
	prices := []float64{out[0].Price, out[1].Price, out[2].Price, out[3].Price}
	assert.Equal(t, []float64{80, 80, 120, 200}, prices)
}

func TestSortOppositeDirectionReverses(t *testing.T) {
	asc := Sort(sortInput(), SortByModel, Ascending)
	desc := Sort(sortInput(), SortByModel, Descending)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortStringIsLocaleAware(t *testing.T) {
	// Locale-aware comparison orders "adidas" before "Nike" and "Puma";
	// a bytewise sort would put the uppercase brands first.
	out := Sort(sortInput(), SortByBrand, Ascending)
	brands := []string{out[0].Brand, out[1].Brand, out[2].Brand, out[3].Brand}
	assert.Equal(t, []string{"adidas", "adidas", "Nike", "Puma"}, brands)
}

func TestSortStableOnTies(t *testing.T) {
	// Records 2 and 4 share price 80; their relative order must survive.
	out := Sort(sortInput(), SortByPrice, Ascending)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, 4, out[1].ID)

	// Same for the string comparator on equal brands.
	out = Sort(sortInput(), SortByBrand, Ascending)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, 4, out[1].ID)
}

func TestSortUnknownKeyPreservesOrder(t *testing.T) {
	out := Sort(sortInput(), SortKey("weight"), Descending)
	assert.Equal(t, sortInput(), out)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := sortInput()
	Sort(records, SortByPrice, Descending)
	assert.Equal(t, sortInput(), records)
}
