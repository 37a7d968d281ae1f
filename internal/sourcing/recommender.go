package sourcing

import (
	"github.com/andresuchdata/vendex/internal/domain"
)

// Scoring constants. These are tuning knobs baked into the scoring formula;
// changing any of them changes every score.
const (
	// rangePadding is added to the min-max range. It keeps a single candidate
	// (or identical values) from dividing by zero and scores the minimum just under 1.
	rangePadding = 1.0

	maxRating            = 5.0
	advancePenalty       = 0.8
	noAdvancePenalty     = 1.0
	paymentMatchScore    = 1.0
	paymentMismatchScore = 0.9
)

// Recommender picks the best manufacturer for a set of items.
// It holds no state between calls.
type Recommender struct {
	weights Weights
}

// NewRecommender creates a recommender with the given weights.
func NewRecommender(weights Weights) (*Recommender, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Recommender{weights: weights}, nil
}

// NewDefaultRecommender creates a recommender with DefaultWeights.
func NewDefaultRecommender() *Recommender {
	return &Recommender{weights: DefaultWeights()}
}

// Recommend returns the highest scoring feasible manufacturer. Ties go to the
// manufacturer listed first. ok is false when no manufacturer can supply every
// item at or above its MOQ.
func (r *Recommender) Recommend(items []domain.SourcingItem, manufacturers []domain.ManufacturerOffer, preferred domain.PaymentMode) (winner domain.ScoredCandidate, ok bool) {
	candidates := r.Rank(items, manufacturers, preferred)
	if len(candidates) == 0 {
		return domain.ScoredCandidate{}, false
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].FinalScore > candidates[best].FinalScore {
			best = i
		}
	}
	return candidates[best], true
}

// Rank scores every feasible manufacturer, in input order.
func (r *Recommender) Rank(items []domain.SourcingItem, manufacturers []domain.ManufacturerOffer, preferred domain.PaymentMode) []domain.ScoredCandidate {
	candidates := make([]domain.ScoredCandidate, 0, len(manufacturers))
	for _, m := range manufacturers {
		totalCost, feasible := quote(items, m)
		if !feasible {
			continue
		}
		candidates = append(candidates, domain.ScoredCandidate{
			ManufacturerID:  m.ManufacturerID,
			TotalCost:       totalCost,
			DistanceKm:      m.DistanceKm,
			AverageRating:   m.AverageRating,
			AdvanceRequired: m.AdvanceRequired,
			PaymentMode:     m.PreferredPaymentMode,
		})
	}
	if len(candidates) == 0 {
		return candidates
	}

	minCost, maxCost := bounds(candidates, func(c domain.ScoredCandidate) float64 { return c.TotalCost })
	minDist, maxDist := bounds(candidates, func(c domain.ScoredCandidate) float64 { return c.DistanceKm })

	for i := range candidates {
		c := &candidates[i]
		c.CostScore = 1 - (c.TotalCost-minCost)/(maxCost-minCost+rangePadding)
		c.DistanceScore = 1 - (c.DistanceKm-minDist)/(maxDist-minDist+rangePadding)
		c.RatingScore = c.AverageRating / maxRating

		c.AdvancePenalty = noAdvancePenalty
		if c.AdvanceRequired {
			c.AdvancePenalty = advancePenalty
		}

		c.PaymentScore = paymentMismatchScore
		if c.PaymentMode == preferred {
			c.PaymentScore = paymentMatchScore
		}

		c.FinalScore = c.CostScore*r.weights.Cost +
			c.RatingScore*r.weights.Rating +
			c.DistanceScore*r.weights.Distance +
			c.AdvancePenalty*r.weights.Advance +
			c.PaymentScore*r.weights.Payment
	}

	return candidates
}

// quote prices items against a manufacturer's catalogue. A manufacturer that
// lacks any SKU, or whose MOQ exceeds any requested quantity, is infeasible.
func quote(items []domain.SourcingItem, m domain.ManufacturerOffer) (float64, bool) {
	catalogue := make(map[string]domain.ProductOffer, len(m.Products))
	for _, p := range m.Products {
		catalogue[p.SKU] = p
	}

	var total float64
	for _, item := range items {
		offer, ok := catalogue[item.SKU]
		if !ok || item.Quantity < offer.MinimumOrderQuantity {
			return 0, false
		}
		total += offer.CostPrice * float64(item.Quantity)
	}
	return total, true
}

func bounds(candidates []domain.ScoredCandidate, value func(domain.ScoredCandidate) float64) (lo, hi float64) {
	lo, hi = value(candidates[0]), value(candidates[0])
	for _, c := range candidates[1:] {
		v := value(c)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
