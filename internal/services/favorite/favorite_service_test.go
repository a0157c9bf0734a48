package favorite

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

func newTestService() (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(store, log), store
}

func TestToggleFlipsState(t *testing.T) {
	s, _ := newTestService()

	assert.True(t, s.Toggle(3))
	assert.True(t, s.IsFavorite(3))

	assert.False(t, s.Toggle(3))
	assert.False(t, s.IsFavorite(3))
}

func TestAddIsIdempotent(t *testing.T) {
	s, _ := newTestService()

	s.Add(3)
	s.Add(3)
	assert.Equal(t, 1, s.Count())
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	s, _ := newTestService()

	s.Add(3)
	s.Remove(99)
	assert.Equal(t, []int{3}, s.All())
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s, _ := newTestService()

	s.Add(5)
	s.Add(1)
	s.Add(9)
	assert.Equal(t, []int{5, 1, 9}, s.All())
}

func TestClearEmptiesSet(t *testing.T) {
	s, _ := newTestService()

	s.Add(1)
	s.Add(2)
	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.All())
}

func TestFavoritesSurviveReload(t *testing.T) {
	s, store := newTestService()
	s.Add(4)
	s.Add(8)
	s.Remove(4)

	s2 := NewService(store, logrus.New())
	assert.Equal(t, []int{8}, s2.All())
}

func TestEmptySetRoundTripsThroughStore(t *testing.T) {
	s, store := newTestService()
	s.Add(1)
	s.Clear()

	var ids []int
	found, err := store.Load(storage.FavoritesKey, &ids)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, ids)
}

func TestCorruptStoredFavoritesFallBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SeedRaw(storage.FavoritesKey, `{"not": "an array"`)

	s := NewService(store, logrus.New())
	assert.Equal(t, 0, s.Count())
}
