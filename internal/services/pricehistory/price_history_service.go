// Package pricehistory simulates a 12-month price series for a sneaker
// from its MSRP, premium and demand level. The series is regenerated on
// every request and never persisted.
package pricehistory

import (
	"math"
	"math/rand"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// Rand is the source of the monthly random factor. Injected so tests
// can drive the walk with fixed sequences.
type Rand interface {
	Float64() float64
}

// Volatility coefficient per demand level.
var volatilityByDemand = map[string]float64{
	"Very High":     0.15,
	"High":          0.12,
	"Moderate-High": 0.08,
	"Moderate":      0.05,
	"Low-Moderate":  0.03,
	"Low":           0.02,
}

const defaultVolatility = 0.05

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type Generator struct {
	rand Rand
}

func NewGenerator(r Rand) *Generator {
	return &Generator{rand: r}
}

// NewDefaultGenerator wires the package-level math/rand source, which
// is safe for concurrent request handling.
func NewDefaultGenerator() *Generator {
	return &Generator{rand: globalRand{}}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Generate produces the 12-point series. Each month compounds on the
// previous month's unrounded price: a uniform random factor in
// [-volatility, +volatility] plus a trend factor that strengthens over
// the year when the premium is strongly positive or negative. A point's
// own trend label compares it against the previous month's price with a
// 2% dead band.
func (g *Generator) Generate(modelID int, msrp, resalePrice float64, premium int, demand string) []models.PricePoint {
	volatility, ok := volatilityByDemand[demand]
	if !ok {
		volatility = defaultVolatility
	}

	trendDirection := 0.0
	if premium > 10 {
		trendDirection = 1
	} else if premium < -5 {
		trendDirection = -1
	}
	trendStrength := math.Abs(float64(premium)) / 100

	basePrice := msrp
	series := make([]models.PricePoint, 0, 12)
	for i := 0; i < 12; i++ {
		randomFactor := (g.rand.Float64() - 0.5) * 2 * volatility
		trendFactor := trendDirection * trendStrength * (float64(i) / 12)
		monthPrice := basePrice * (1 + randomFactor + trendFactor)

		label := models.TrendStable
		if monthPrice > basePrice*1.02 {
			label = models.TrendUp
		} else if monthPrice < basePrice*0.98 {
			label = models.TrendDown
		}

		series = append(series, models.PricePoint{
			Month: monthLabels[i],
			Price: int(math.Round(monthPrice)),
			Trend: label,
		})
		basePrice = monthPrice
	}
	return series
}

// Stats summarizes a generated series. Volatility is the standard
// deviation of the rounded prices as a percentage of the mean.
func Stats(series []models.PricePoint) models.PriceStats {
	if len(series) == 0 {
		return models.PriceStats{}
	}

	minPrice, maxPrice, sum := series[0].Price, series[0].Price, 0
	for _, p := range series {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
		sum += p.Price
	}
	avg := int(math.Round(float64(sum) / float64(len(series))))

	var variance float64
	for _, p := range series {
		d := float64(p.Price - avg)
		variance += d * d
	}
	variance /= float64(len(series))
	volatility := int(math.Round(math.Sqrt(variance) / float64(avg) * 100))

	return models.PriceStats{
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		AvgPrice:   avg,
		Volatility: volatility,
		Range:      maxPrice - minPrice,
	}
}
