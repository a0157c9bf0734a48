package models

import "time"

// Trend classifications shared by the ranking engine and the
// price-history generator.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// SneakerRecord is one entry of the static catalog. Records are loaded
// once at startup and never mutated.
type SneakerRecord struct {
	ID            int     `json:"id"`
	Model         string  `json:"model"`
	Brand         string  `json:"brand"`
	Style         string  `json:"style"`
	Price         float64 `json:"price"`
	ResalePrice   float64 `json:"resalePrice"`
	Premium       int     `json:"premium"`
	Use           string  `json:"use"`
	Gender        string  `json:"gender"`
	Status        string  `json:"status"`
	Demand        string  `json:"demand"`
	Cushioning    string  `json:"cushioning"`
	TechFeatures  string  `json:"techFeatures"`
	Colorways     int     `json:"colorways"`
	Collaboration string  `json:"collaboration"`
	AgeGroup      string  `json:"ageGroup"`
	ActivityLevel string  `json:"activityLevel"`
	Sales         string  `json:"sales"`
	PriceRange    string  `json:"priceRange"`
}

// FilterCriteria describes one filter pass over the catalog. An empty
// slice for a categorical dimension means "no restriction", not
// "match nothing".
type FilterCriteria struct {
	PriceRange   [2]float64 `json:"priceRange"`
	PremiumRange [2]int     `json:"premiumRange"`
	Uses         []string   `json:"uses"`
	Brands       []string   `json:"brands"`
	Styles       []string   `json:"styles"`
	DemandLevels []string   `json:"demandLevels"`
	Genders      []string   `json:"genders"`
	Statuses     []string   `json:"statuses"`
}

// DefaultCriteria returns the inactive filter state: ranges wide enough
// to pass the whole catalog and no categorical restrictions.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange:   [2]float64{0, 300},
		PremiumRange: [2]int{-50, 100},
	}
}

// RankingCounter tracks engagement for one sneaker id.
type RankingCounter struct {
	ID            int   `json:"id"`
	FavoriteCount int   `json:"favoriteCount"`
	CompareCount  int   `json:"compareCount"`
	ViewCount     int   `json:"viewCount"`
	LastUpdated   int64 `json:"lastUpdated"`
}

// RankedSneaker is a counter with its derived score, rank and trend.
// Score, rank and trend are recomputed on every read, never stored.
type RankedSneaker struct {
	RankingCounter
	TotalScore int    `json:"totalScore"`
	Rank       int    `json:"rank"`
	Trend      string `json:"trend"`
}

// PricePoint is one month of the simulated price series.
type PricePoint struct {
	Month string `json:"month"`
	Price int    `json:"price"`
	Trend string `json:"trend"`
}

// PriceStats summarizes a generated price series. Volatility here is a
// display statistic (stddev as a percentage of the mean), distinct from
// the volatility coefficient that drives generation.
type PriceStats struct {
	MinPrice   int `json:"minPrice"`
	MaxPrice   int `json:"maxPrice"`
	AvgPrice   int `json:"avgPrice"`
	Volatility int `json:"volatility"`
	Range      int `json:"range"`
}

// ReviewAspects holds the per-aspect 1-5 scores of a review.
type ReviewAspects struct {
	Comfort    int `json:"comfort"`
	Durability int `json:"durability"`
	Style      int `json:"style"`
	Value      int `json:"value"`
}

// Review is a user-submitted review for one sneaker.
type Review struct {
	ID        string        `json:"id"`
	SneakerID int           `json:"sneakerId"`
	Author    string        `json:"author"`
	Rating    int           `json:"rating"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Aspects   ReviewAspects `json:"aspects"`
	CreatedAt int64         `json:"createdAt"`
	Helpful   int           `json:"helpful"`
}

// AspectAverages are the mean per-aspect scores across a sneaker's
// reviews.
type AspectAverages struct {
	Comfort    float64 `json:"comfort"`
	Durability float64 `json:"durability"`
	Style      float64 `json:"style"`
	Value      float64 `json:"value"`
}

// ReviewSummary aggregates the reviews of one sneaker.
type ReviewSummary struct {
	AverageRating float64        `json:"averageRating"`
	Aspects       AspectAverages `json:"aspects"`
	Distribution  map[int]int    `json:"distribution"`
	Total         int            `json:"total"`
}

// PriceAlert watches one sneaker for a price at or below TargetPrice.
// TargetPrice is strictly below the price known at creation time.
type PriceAlert struct {
	ID           string  `json:"id"`
	SneakerID    int     `json:"sneakerId"`
	SneakerModel string  `json:"sneakerModel"`
	TargetPrice  float64 `json:"targetPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	CreatedAt    int64   `json:"createdAt"`
	Triggered    bool    `json:"triggered"`
	TriggeredAt  *int64  `json:"triggeredAt,omitempty"`
}

// Document is a persisted JSON blob under a fixed storage key. Each
// domain (favorites, reviews, alerts, rankings) writes its whole
// collection as one document on every mutation.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
