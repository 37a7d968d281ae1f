package service

import (
	"fmt"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/numeric"
	"github.com/andresuchdata/vendex/internal/sourcing"
	"github.com/shopspring/decimal"
)

// NoFeasibleManufacturerMessage is returned to callers when nobody can fulfil the request.
const NoFeasibleManufacturerMessage = "No manufacturer can fulfill all items with required MOQs."

type SourcingService struct {
	recommender *sourcing.Recommender
}

func NewSourcingService(recommender *sourcing.Recommender) *SourcingService {
	if recommender == nil {
		recommender = sourcing.NewDefaultRecommender()
	}
	return &SourcingService{recommender: recommender}
}

// Recommend picks a manufacturer for req. ok is false when no manufacturer is feasible.
func (s *SourcingService) Recommend(req domain.SourcingRequest) (rec domain.Recommendation, ok bool) {
	winner, ok := s.recommender.Recommend(req.Items, req.Manufacturers, req.Context.PreferredPaymentMode)
	if !ok {
		return domain.Recommendation{}, false
	}

	cost := decimal.NewFromFloat(winner.TotalCost).Truncate(0)
	return domain.Recommendation{
		RecommendedManufacturerID: winner.ManufacturerID,
		Score:                     numeric.Round(winner.FinalScore, 4),
		TotalCost:                 cost.IntPart(),
		Reasoning: fmt.Sprintf(
			"Selected based on lowest effective cost (₹%s), rating %s, distance %s km, and compatibility with preferred payment mode.",
			cost.String(),
			decimal.NewFromFloat(winner.AverageRating).String(),
			decimal.NewFromFloat(winner.DistanceKm).String(),
		),
	}, true
}

// Rank returns every feasible manufacturer with its subscores, in input order.
func (s *SourcingService) Rank(req domain.SourcingRequest) []domain.ScoredCandidate {
	return s.recommender.Rank(req.Items, req.Manufacturers, req.Context.PreferredPaymentMode)
}
