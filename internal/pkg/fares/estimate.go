package fares

import (
	"sort"

	"github.com/wakapath/wakapath/app/models"
)

const (
	// Currency of all fare observations.
	Currency = "NGN"
	// MaxSamples bounds how many recent observations feed an estimate.
	MaxSamples = 30

	minSamples = 3
)

// Estimate is a min/max fare band derived from recent observations. It is
// recomputed on every read, never stored.
type Estimate struct {
	Currency   string `json:"currency"`
	Min        uint   `json:"min"`
	Max        uint   `json:"max"`
	SampleSize int    `json:"sample_size"`
}

// FromSamples computes the estimate band for a step from its most recent fare
// observations. Fewer than three samples yield no estimate. Amounts are
// sorted ascending; the band is the 20th and 80th percentile values at
// index floor(n*0.2) and floor(n*0.8).
func FromSamples(samples []models.StepFare) *Estimate {
	if len(samples) < minSamples {
		return nil
	}

	amounts := make([]uint, len(samples))
	for i, s := range samples {
		amounts[i] = s.Amount
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i] < amounts[j] })

	n := len(amounts)
	lower := amounts[int(float64(n)*0.2)]
	upper := amounts[int(float64(n)*0.8)]

	return &Estimate{
		Currency:   Currency,
		Min:        lower,
		Max:        upper,
		SampleSize: n,
	}
}
