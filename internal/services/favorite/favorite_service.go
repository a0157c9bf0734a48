// Package favorite tracks the set of favorited sneaker ids.
package favorite

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

type Service struct {
	mu    sync.Mutex
	store storage.Store
	log   *logrus.Logger
	ids   []int
}

func NewService(store storage.Store, log *logrus.Logger) *Service {
	s := &Service{store: store, log: log}
	if found, err := store.Load(storage.FavoritesKey, &s.ids); err != nil {
		log.WithError(err).Error("Failed to load favorites")
	} else if !found {
		s.ids = nil
	}
	return s
}

// Toggle flips the favorite state of id and reports the new state.
func (s *Service) Toggle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(id) >= 0 {
		s.remove(id)
		s.persist()
		return false
	}
	s.ids = append(s.ids, id)
	s.persist()
	return true
}

func (s *Service) Add(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(id) < 0 {
		s.ids = append(s.ids, id)
		s.persist()
	}
}

func (s *Service) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(id) >= 0 {
		s.remove(id)
		s.persist()
	}
}

func (s *Service) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(id) >= 0
}

// All returns the favorited ids in insertion order.
func (s *Service) All() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.persist()
}

func (s *Service) index(id int) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *Service) remove(id int) {
	out := s.ids[:0]
	for _, v := range s.ids {
		if v != id {
			out = append(out, v)
		}
	}
	s.ids = out
}

func (s *Service) persist() {
	// Stored as a plain array so an empty set round-trips as [].
	ids := s.ids
	if ids == nil {
		ids = []int{}
	}
	if err := s.store.Save(storage.FavoritesKey, ids); err != nil {
		s.log.WithError(err).Error("Failed to persist favorites")
	}
}
