// Package ranking maintains per-sneaker engagement counters and
// derives the community hotness ranking from them.
package ranking

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

// Hotness weights: favorites 40%, comparisons 35%, views 25%.
const (
	favoriteWeight = 40
	compareWeight  = 35
	viewWeight     = 25
)

// Trend thresholds on favoriteCount + compareCount. Views do not count
// toward trend.
const (
	trendUpAbove   = 50
	trendDownBelow = 10
)

// First-boot seed ceilings, matching the reference data shape.
const (
	seedFavoritesMax = 100
	seedComparesMax  = 50
	seedViewsMax     = 500
)

type Service struct {
	mu       sync.Mutex
	store    storage.Store
	log      *logrus.Logger
	counters map[int]*models.RankingCounter
	now      func() time.Time
}

func NewService(store storage.Store, log *logrus.Logger) *Service {
	s := &Service{
		store:    store,
		log:      log,
		counters: make(map[int]*models.RankingCounter),
		now:      time.Now,
	}
	if found, err := store.Load(storage.RankingsKey, &s.counters); err != nil {
		log.WithError(err).Error("Failed to load rankings")
	} else if !found {
		s.counters = make(map[int]*models.RankingCounter)
	}
	return s
}

// Bootstrap seeds random counters for every id so the rankings view is
// populated before any real interaction. It is a no-op when counters
// were restored from storage.
func (s *Service) Bootstrap(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.counters) > 0 {
		return
	}
	ts := s.now().UnixMilli()
	for _, id := range ids {
		s.counters[id] = &models.RankingCounter{
			ID:            id,
			FavoriteCount: rand.Intn(seedFavoritesMax),
			CompareCount:  rand.Intn(seedComparesMax),
			ViewCount:     rand.Intn(seedViewsMax),
			LastUpdated:   ts,
		}
	}
	s.persist()
}

// RecordFavorite adjusts the favorite counter by one. Unfavoriting at
// zero is a no-op so a counter never goes negative.
func (s *Service) RecordFavorite(id int, favorited bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.counter(id)
	if favorited {
		c.FavoriteCount++
	} else if c.FavoriteCount > 0 {
		c.FavoriteCount--
	}
	c.LastUpdated = s.now().UnixMilli()
	s.persist()
}

// RecordCompare bumps the compare counter of every id in the batch.
func (s *Service) RecordCompare(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.now().UnixMilli()
	for _, id := range ids {
		c := s.counter(id)
		c.CompareCount++
		c.LastUpdated = ts
	}
	s.persist()
}

func (s *Service) RecordView(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.counter(id)
	c.ViewCount++
	c.LastUpdated = s.now().UnixMilli()
	s.persist()
}

// Rankings computes the full ranked list, strictly non-increasing by
// score. Equal scores order by ascending id. Score, rank and trend are
// derived fresh on every call.
func (s *Service) Rankings() []models.RankedSneaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranked := make([]models.RankedSneaker, 0, len(s.counters))
	for _, c := range s.counters {
		ranked = append(ranked, models.RankedSneaker{
			RankingCounter: *c,
			TotalScore:     score(c),
			Trend:          trend(c),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Top returns the first limit entries of the ranking.
func (s *Service) Top(limit int) []models.RankedSneaker {
	ranked := s.Rankings()
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// For returns the ranking entry of a single sneaker.
func (s *Service) For(id int) (models.RankedSneaker, bool) {
	for _, r := range s.Rankings() {
		if r.ID == id {
			return r, true
		}
	}
	return models.RankedSneaker{}, false
}

// counter returns the record for id, creating a zeroed one for ids not
// seen before. Caller holds the lock.
func (s *Service) counter(id int) *models.RankingCounter {
	c, ok := s.counters[id]
	if !ok {
		c = &models.RankingCounter{ID: id, LastUpdated: s.now().UnixMilli()}
		s.counters[id] = c
	}
	return c
}

func (s *Service) persist() {
	if err := s.store.Save(storage.RankingsKey, s.counters); err != nil {
		s.log.WithError(err).Error("Failed to persist rankings")
	}
}

func score(c *models.RankingCounter) int {
	return c.FavoriteCount*favoriteWeight + c.CompareCount*compareWeight + c.ViewCount*viewWeight
}

func trend(c *models.RankingCounter) string {
	activity := c.FavoriteCount + c.CompareCount
	switch {
	case activity > trendUpAbove:
		return models.TrendUp
	case activity < trendDownBelow:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}
