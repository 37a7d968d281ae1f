package service

import (
	"context"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/inventory"
	"golang.org/x/sync/errgroup"
)

const defaultBulkWorkers = 8

// InventoryService exposes the forecaster and the reorder decision engine.
// It keeps no state between calls and caches nothing.
type InventoryService struct {
	workers int
}

func NewInventoryService(workers int) *InventoryService {
	if workers <= 0 {
		workers = defaultBulkWorkers
	}
	return &InventoryService{workers: workers}
}

// Forecast projects the next seven periods of demand from a sales history.
func (s *InventoryService) Forecast(series []float64) (domain.ForecastResult, error) {
	return inventory.Forecast(series)
}

// Decide returns the reorder action for a forecast and stock position.
func (s *InventoryService) Decide(forecast int, confidence float64, currentStock int, unitCost float64) domain.ReorderDecision {
	return inventory.Decide(forecast, confidence, currentStock, unitCost)
}

// ForecastAndDecide forecasts a sales history and feeds the result to the decision engine.
func (s *InventoryService) ForecastAndDecide(req domain.ReorderRequest) (domain.ForecastAndDecision, error) {
	f, err := inventory.Forecast(req.SalesHistory)
	if err != nil {
		return domain.ForecastAndDecision{}, err
	}

	return domain.ForecastAndDecision{
		Forecast:   f.Total,
		Confidence: f.Confidence,
		Decision:   inventory.Decide(f.Total, f.Confidence, req.CurrentStock, req.UnitCost),
	}, nil
}

// BulkForecastAndDecide runs ForecastAndDecide for many SKUs on a bounded
// worker pool. Results keep input order. A SKU with an unusable history gets
// an error message in its row; only context cancellation fails the batch.
func (s *InventoryService) BulkForecastAndDecide(ctx context.Context, reqs []domain.ReorderRequest) ([]domain.ReorderResult, error) {
	results := make([]domain.ReorderResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row := domain.ReorderResult{SKU: req.SKU}
			res, err := s.ForecastAndDecide(req)
			if err != nil {
				row.Error = err.Error()
			} else {
				row.Result = &res
			}
			results[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
