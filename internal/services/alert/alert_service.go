// Package alert manages price-drop alerts: created below the current
// price, triggered once when a checked price reaches the target,
// resettable for re-monitoring.
package alert

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/catalog"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

var (
	ErrNotFound      = errors.New("alert not found")
	ErrInvalidTarget = errors.New("target price must be positive and below the current price")
)

// Notifier receives one-shot notifications for newly triggered alerts.
// Delivery is best effort; implementations must not block.
type Notifier interface {
	NotifyAlert(alert models.PriceAlert, currentPrice float64)
}

type Service struct {
	mu        sync.Mutex
	store     storage.Store
	log       *logrus.Logger
	notifiers []Notifier
	alerts    []models.PriceAlert
	now       func() time.Time
}

func NewService(store storage.Store, log *logrus.Logger, notifiers ...Notifier) *Service {
	s := &Service{store: store, log: log, notifiers: notifiers, now: time.Now}
	if found, err := store.Load(storage.AlertsKey, &s.alerts); err != nil {
		log.WithError(err).Error("Failed to load alerts")
	} else if !found {
		s.alerts = nil
	}
	return s
}

// Create registers an alert for sneaker at targetPrice. The target must
// be strictly below the sneaker's current resale price; otherwise the
// request is rejected and nothing is stored.
func (s *Service) Create(sneaker models.SneakerRecord, targetPrice float64) (models.PriceAlert, error) {
	current := sneaker.ResalePrice
	if targetPrice <= 0 || targetPrice >= current {
		return models.PriceAlert{}, ErrInvalidTarget
	}

	a := models.PriceAlert{
		ID:           uuid.NewString(),
		SneakerID:    sneaker.ID,
		SneakerModel: sneaker.Model,
		TargetPrice:  targetPrice,
		CurrentPrice: current,
		CreatedAt:    s.now().UnixMilli(),
	}

	s.mu.Lock()
	s.alerts = append(s.alerts, a)
	s.persist()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"sneaker_id": a.SneakerID,
		"target":     a.TargetPrice,
	}).Info("Price alert created")
	return a, nil
}

// All returns every alert, newest last.
func (s *Service) All() []models.PriceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PriceAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Active returns the alerts still waiting for their target price.
func (s *Service) Active() []models.PriceAlert {
	return s.filtered(func(a models.PriceAlert) bool { return !a.Triggered })
}

// Triggered returns the alerts that already fired.
func (s *Service) Triggered() []models.PriceAlert {
	return s.filtered(func(a models.PriceAlert) bool { return a.Triggered })
}

// Check compares currentPrice against every untriggered alert for the
// sneaker. Matching alerts flip to triggered, record the trigger time
// and fire a one-shot notification. The newly triggered alerts are
// returned.
func (s *Service) Check(sneakerID int, currentPrice float64) []models.PriceAlert {
	s.mu.Lock()
	var fired []models.PriceAlert
	ts := s.now().UnixMilli()
	for i := range s.alerts {
		a := &s.alerts[i]
		if a.SneakerID != sneakerID || a.Triggered || currentPrice > a.TargetPrice {
			continue
		}
		a.Triggered = true
		triggeredAt := ts
		a.TriggeredAt = &triggeredAt
		a.CurrentPrice = currentPrice
		fired = append(fired, *a)
	}
	if len(fired) > 0 {
		s.persist()
	}
	s.mu.Unlock()

	for _, a := range fired {
		s.notify(a, currentPrice)
	}
	return fired
}

// Reset re-arms a triggered alert for another round of monitoring.
func (s *Service) Reset(id string) (models.PriceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Triggered = false
			s.alerts[i].TriggeredAt = nil
			s.persist()
			return s.alerts[i], nil
		}
	}
	return models.PriceAlert{}, ErrNotFound
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Sweep checks every active alert against the catalog's current resale
// prices. Invoked from the cron scheduler; the imperative Check
// endpoint stays available alongside it.
func (s *Service) Sweep(cat *catalog.Catalog) {
	checked := make(map[int]struct{})
	for _, a := range s.Active() {
		if _, done := checked[a.SneakerID]; done {
			continue
		}
		checked[a.SneakerID] = struct{}{}
		sneaker, ok := cat.Get(a.SneakerID)
		if !ok {
			continue
		}
		if fired := s.Check(a.SneakerID, sneaker.ResalePrice); len(fired) > 0 {
			s.log.Infof("Sweep triggered %d alert(s) for sneaker %d", len(fired), a.SneakerID)
		}
	}
}

func (s *Service) filtered(keep func(models.PriceAlert) bool) []models.PriceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PriceAlert
	for _, a := range s.alerts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Service) notify(a models.PriceAlert, currentPrice float64) {
	for _, n := range s.notifiers {
		n.NotifyAlert(a, currentPrice)
	}
}

func (s *Service) persist() {
	alerts := s.alerts
	if alerts == nil {
		alerts = []models.PriceAlert{}
	}
	if err := s.store.Save(storage.AlertsKey, alerts); err != nil {
		s.log.WithError(err).Error("Failed to persist alerts")
	}
}
