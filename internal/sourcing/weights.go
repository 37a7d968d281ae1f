package sourcing

import (
	"fmt"
	"math"
)

// Weights sets the relative importance of each sourcing factor.
// They must sum to 1.0 (±0.001).
type Weights struct {
	Cost     float64 `json:"cost"`
	Rating   float64 `json:"rating"`
	Distance float64 `json:"distance"`
	Advance  float64 `json:"advance"`
	Payment  float64 `json:"payment"`
}

// DefaultWeights returns the fixed production weighting.
func DefaultWeights() Weights {
	return Weights{
		Cost:     0.45,
		Rating:   0.25,
		Distance: 0.15,
		Advance:  0.10,
		Payment:  0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Cost + w.Rating + w.Distance + w.Advance + w.Payment
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Cost, w.Rating, w.Distance, w.Advance, w.Payment} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
