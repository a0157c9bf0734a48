// Package storage persists each domain's state as one JSON document
// under a fixed key, rewritten in full on every mutation. A document
// that is missing or fails to parse is treated as "no data" so callers
// always start from their empty default instead of an error.
package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// Storage keys, one per domain.
const (
	FavoritesKey = "sneaker-matrix-favorites"
	ReviewsKey   = "sneaker-matrix-reviews"
	AlertsKey    = "sneaker-matrix-price-alerts"
	RankingsKey  = "sneaker-matrix-rankings"
)

type Store interface {
	// Load unmarshals the document under key into out. It returns
	// false when there is no usable document; corrupt JSON is logged
	// and reported as absent, never as an error.
	Load(key string, out interface{}) (bool, error)
	// Save marshals v and replaces the document under key.
	Save(key string, v interface{}) error
}

type SQLStore struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewSQLStore(db *gorm.DB, log *logrus.Logger) *SQLStore {
	return &SQLStore{db: db, log: log}
}

func (s *SQLStore) Load(key string, out interface{}) (bool, error) {
	var doc models.Document
	err := s.db.First(&doc, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		s.log.WithError(err).Warnf("Discarding corrupt document %q", key)
		return false, nil
	}
	return true, nil
}

func (s *SQLStore) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	doc := models.Document{Key: key, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// MemoryStore keeps documents in a map. It backs the service tests so
// engines run without a real database.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]string
	log  *logrus.Logger
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]string), log: logrus.New()}
}

func (m *MemoryStore) Load(key string, out interface{}) (bool, error) {
	m.mu.Lock()
	raw, ok := m.docs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		m.log.WithError(err).Warnf("Discarding corrupt document %q", key)
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[key] = string(data)
	m.mu.Unlock()
	return nil
}

// SeedRaw writes an unvalidated document, letting tests stage corrupt
// payloads.
func (m *MemoryStore) SeedRaw(key, value string) {
	m.mu.Lock()
	m.docs[key] = value
	m.mu.Unlock()
}
