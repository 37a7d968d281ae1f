package service

import (
	"testing"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcingServiceRecommend(t *testing.T) {
	svc := NewSourcingService(nil)

	rec, ok := svc.Recommend(domain.SourcingRequest{
		Context: domain.SourcingContext{PreferredPaymentMode: domain.PaymentModeCash},
		Items:   []domain.SourcingItem{{SKU: "OIL-1L", Quantity: 10}},
		Manufacturers: []domain.ManufacturerOffer{
			{
				ManufacturerID:       5,
				DistanceKm:           12.5,
				AverageRating:        4.5,
				PreferredPaymentMode: domain.PaymentModeCash,
				Products:             []domain.ProductOffer{{SKU: "OIL-1L", CostPrice: 263.25, MinimumOrderQuantity: 10}},
			},
		},
	})
	require.True(t, ok)

	assert.Equal(t, int64(5), rec.RecommendedManufacturerID)
	assert.Equal(t, int64(2632), rec.TotalCost)
	assert.InDelta(t, 0.975, rec.Score, 1e-12)
	assert.Equal(t,
		"Selected based on lowest effective cost (₹2632), rating 4.5, distance 12.5 km, and compatibility with preferred payment mode.",
		rec.Reasoning)
}

func TestSourcingServiceNoFeasibleManufacturer(t *testing.T) {
	svc := NewSourcingService(nil)

	_, ok := svc.Recommend(domain.SourcingRequest{
		Items: []domain.SourcingItem{{SKU: "OIL-1L", Quantity: 1}},
		Manufacturers: []domain.ManufacturerOffer{
			{ManufacturerID: 5, Products: []domain.ProductOffer{{SKU: "OIL-1L", CostPrice: 1, MinimumOrderQuantity: 10}}},
		},
	})
	assert.False(t, ok)
}

func TestSourcingServiceRank(t *testing.T) {
	svc := NewSourcingService(nil)

	ranked := svc.Rank(domain.SourcingRequest{
		Items: []domain.SourcingItem{{SKU: "A", Quantity: 1}},
		Manufacturers: []domain.ManufacturerOffer{
			{ManufacturerID: 1, Products: []domain.ProductOffer{{SKU: "A", CostPrice: 1}}},
			{ManufacturerID: 2},
			{ManufacturerID: 3, Products: []domain.ProductOffer{{SKU: "A", CostPrice: 2}}},
		},
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].ManufacturerID)
	assert.Equal(t, int64(3), ranked[1].ManufacturerID)
}
