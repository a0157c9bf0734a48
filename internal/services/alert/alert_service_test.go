package alert

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/catalog"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

// recordingNotifier captures every notification it receives.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []struct {
		alert models.PriceAlert
		price float64
	}
}

func (n *recordingNotifier) NotifyAlert(a models.PriceAlert, currentPrice float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, struct {
		alert models.PriceAlert
		price float64
	}{a, currentPrice})
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testSneaker() models.SneakerRecord {
	return models.SneakerRecord{ID: 7, Model: "Alpha Retro", ResalePrice: 100}
}

func TestCreateAcceptsTargetBelowResale(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())

	a, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 7, a.SneakerID)
	assert.Equal(t, "Alpha Retro", a.SneakerModel)
	assert.Equal(t, 80.0, a.TargetPrice)
	assert.Equal(t, 100.0, a.CurrentPrice)
	assert.False(t, a.Triggered)
	assert.Nil(t, a.TriggeredAt)
	assert.Positive(t, a.CreatedAt)
}

func TestCreateRejectsInvalidTargets(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())

	for _, target := range []float64{0, -5, 100, 120} {
		_, err := s.Create(testSneaker(), target)
		assert.ErrorIs(t, err, ErrInvalidTarget, "target %v", target)
	}
	assert.Empty(t, s.All())
}

func TestCheckTriggersAndReset(t *testing.T) {
	// Alert at target 80 while the price is 100; a later check at 75
	// trips it, and a reset re-arms it.
	notifier := &recordingNotifier{}
	s := NewService(storage.NewMemoryStore(), quietLogger(), notifier)

	a, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	fired := s.Check(7, 75)
	require.Len(t, fired, 1)
	assert.True(t, fired[0].Triggered)
	require.NotNil(t, fired[0].TriggeredAt)
	assert.Equal(t, 75.0, fired[0].CurrentPrice)
	assert.Equal(t, 1, notifier.count())

	reset, err := s.Reset(a.ID)
	require.NoError(t, err)
	assert.False(t, reset.Triggered)
	assert.Nil(t, reset.TriggeredAt)
}

func TestCheckAboveTargetDoesNothing(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewService(storage.NewMemoryStore(), quietLogger(), notifier)
	_, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	assert.Empty(t, s.Check(7, 85))
	assert.Empty(t, s.Triggered())
	assert.Equal(t, 0, notifier.count())
}

func TestCheckAtExactTargetTriggers(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())
	_, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	assert.Len(t, s.Check(7, 80), 1)
}

func TestCheckTriggersEachAlertOnlyOnce(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewService(storage.NewMemoryStore(), quietLogger(), notifier)
	_, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	require.Len(t, s.Check(7, 70), 1)
	assert.Empty(t, s.Check(7, 60))
	assert.Equal(t, 1, notifier.count())
}

func TestCheckIgnoresOtherSneakers(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())
	_, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	assert.Empty(t, s.Check(99, 10))
}

func TestActiveAndTriggeredViews(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())
	a1, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)
	a2, err := s.Create(models.SneakerRecord{ID: 8, Model: "Beta", ResalePrice: 200}, 150)
	require.NoError(t, err)

	s.Check(7, 70)

	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, a2.ID, active[0].ID)

	triggered := s.Triggered()
	require.Len(t, triggered, 1)
	assert.Equal(t, a1.ID, triggered[0].ID)
}

func TestDeleteRemovesAlert(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())
	a, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))
	assert.Empty(t, s.All())
	assert.ErrorIs(t, s.Delete(a.ID), ErrNotFound)
}

func TestResetUnknownAlert(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), quietLogger())
	_, err := s.Reset("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertsSurviveReload(t *testing.T) {
	store := storage.NewMemoryStore()
	s := NewService(store, quietLogger())
	a, err := s.Create(testSneaker(), 80)
	require.NoError(t, err)
	s.Check(7, 75)

	s2 := NewService(store, quietLogger())
	all := s2.All()
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ID)
	assert.True(t, all[0].Triggered)
	require.NotNil(t, all[0].TriggeredAt)
}

func TestCorruptStoredAlertsFallBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SeedRaw(storage.AlertsKey, "[{broken")

	s := NewService(store, quietLogger())
	assert.Empty(t, s.All())
}

func TestSweepLeavesAlertsAtCatalogPrices(t *testing.T) {
	// Targets are always created below the resale price, so a sweep
	// against unchanged catalog prices must not fire anything.
	cat, err := catalog.Load()
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	s := NewService(storage.NewMemoryStore(), quietLogger(), notifier)
	sneaker, ok := cat.Get(1)
	require.True(t, ok)
	_, err = s.Create(sneaker, sneaker.ResalePrice-10)
	require.NoError(t, err)

	s.Sweep(cat)
	assert.Empty(t, s.Triggered())
	assert.Equal(t, 0, notifier.count())
}
