// Package review manages user-submitted sneaker reviews. All reviews
// live in one flat collection and are filtered by sneaker id on read.
package review

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
)

var ErrNotFound = errors.New("review not found")

// Submission is the caller-supplied part of a review.
type Submission struct {
	Author  string               `json:"author"`
	Rating  int                  `json:"rating"`
	Title   string               `json:"title"`
	Content string               `json:"content"`
	Aspects models.ReviewAspects `json:"aspects"`
}

type Service struct {
	mu      sync.Mutex
	store   storage.Store
	log     *logrus.Logger
	reviews []models.Review
	now     func() time.Time
}

func NewService(store storage.Store, log *logrus.Logger) *Service {
	s := &Service{store: store, log: log, now: time.Now}
	if found, err := store.Load(storage.ReviewsKey, &s.reviews); err != nil {
		log.WithError(err).Error("Failed to load reviews")
	} else if !found {
		s.reviews = nil
	}
	return s
}

// Add validates and stores a new review. Invalid input is rejected
// without mutating state.
func (s *Service) Add(sneakerID int, sub Submission) (models.Review, error) {
	if err := validate(sub); err != nil {
		return models.Review{}, err
	}

	r := models.Review{
		ID:        uuid.NewString(),
		SneakerID: sneakerID,
		Author:    strings.TrimSpace(sub.Author),
		Rating:    sub.Rating,
		Title:     strings.TrimSpace(sub.Title),
		Content:   strings.TrimSpace(sub.Content),
		Aspects:   sub.Aspects,
		CreatedAt: s.now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
	s.persist()
	return r, nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reviews {
		if r.ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// MarkHelpful bumps a review's helpful counter.
func (s *Service) MarkHelpful(id string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].Helpful++
			s.persist()
			return s.reviews[i], nil
		}
	}
	return models.Review{}, ErrNotFound
}

// ForSneaker returns the sneaker's reviews ordered most-helpful first.
// Equal helpful counts stay newest first.
func (s *Service) ForSneaker(sneakerID int) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for _, r := range s.reviews {
		if r.SneakerID == sneakerID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Helpful != out[j].Helpful {
			return out[i].Helpful > out[j].Helpful
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Summary aggregates a sneaker's reviews: mean overall rating, mean
// per-aspect scores and the 1-5 star distribution, each rounded to one
// decimal where fractional.
func (s *Service) Summary(sneakerID int) models.ReviewSummary {
	reviews := s.ForSneaker(sneakerID)

	summary := models.ReviewSummary{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		Total:        len(reviews),
	}
	if len(reviews) == 0 {
		return summary
	}

	var ratingSum int
	var comfort, durability, style, value int
	for _, r := range reviews {
		ratingSum += r.Rating
		summary.Distribution[r.Rating]++
		comfort += r.Aspects.Comfort
		durability += r.Aspects.Durability
		style += r.Aspects.Style
		value += r.Aspects.Value
	}

	n := float64(len(reviews))
	summary.AverageRating = round1(float64(ratingSum) / n)
	summary.Aspects = models.AspectAverages{
		Comfort:    round1(float64(comfort) / n),
		Durability: round1(float64(durability) / n),
		Style:      round1(float64(style) / n),
		Value:      round1(float64(value) / n),
	}
	return summary
}

func (s *Service) persist() {
	reviews := s.reviews
	if reviews == nil {
		reviews = []models.Review{}
	}
	if err := s.store.Save(storage.ReviewsKey, reviews); err != nil {
		s.log.WithError(err).Error("Failed to persist reviews")
	}
}

func validate(sub Submission) error {
	if strings.TrimSpace(sub.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if strings.TrimSpace(sub.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(sub.Content) == "" {
		return fmt.Errorf("content is required")
	}
	if sub.Rating < 1 || sub.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	for name, v := range map[string]int{
		"comfort":    sub.Aspects.Comfort,
		"durability": sub.Aspects.Durability,
		"style":      sub.Aspects.Style,
		"value":      sub.Aspects.Value,
	} {
		if v < 1 || v > 5 {
			return fmt.Errorf("%s score must be between 1 and 5", name)
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
