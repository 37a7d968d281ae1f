package inventory

import (
	"errors"
	"fmt"
	"math"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/numeric"
)

// ErrInvalidInput is returned when a sales history cannot be forecast.
var ErrInvalidInput = errors.New("invalid input")

const (
	// forecastHorizon is the number of future periods summed into the forecast.
	forecastHorizon = 7

	// minConfidence is a tuning knob, not a derived value: confidence is
	// never reported below it, and a non-positive sales total reports exactly it.
	minConfidence = 0.5
)

// Forecast fits an ordinary least-squares trend line to series (x = 0..n-1),
// projects it over the next seven periods and returns the rounded total with a
// confidence score based on the relative spread of the history.
//
// The total is never negative: a steeply falling trend forecasts zero demand.
func Forecast(series []float64) (domain.ForecastResult, error) {
	if series == nil {
		return domain.ForecastResult{}, fmt.Errorf("%w: sales_history must be a non-empty list", ErrInvalidInput)
	}
	if len(series) < 2 {
		return domain.ForecastResult{}, fmt.Errorf("%w: sales_history must contain at least two data points", ErrInvalidInput)
	}

	slope, intercept := fitLine(series)

	n := len(series)
	var projected float64
	for x := n; x < n+forecastHorizon; x++ {
		projected += intercept + slope*float64(x)
	}

	// Python-style rounding so x.5 totals land on the even neighbour.
	total := int(math.RoundToEven(projected))
	if total < 0 {
		total = 0
	}

	return domain.ForecastResult{
		Total:      total,
		Confidence: confidence(series),
	}, nil
}

// fitLine returns the least-squares slope and intercept of series against its index.
// The index sequence is never degenerate for n >= 2, so the denominator is positive.
func fitLine(series []float64) (slope, intercept float64) {
	n := float64(len(series))
	xMean := (n - 1) / 2
	yMean := mean(series)

	var num, den float64
	for i, y := range series {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}

	slope = num / den
	intercept = yMean - slope*xMean
	return slope, intercept
}

func confidence(series []float64) float64 {
	var total float64
	for _, v := range series {
		total += v
	}
	if total <= 0 {
		return minConfidence
	}

	c := numeric.Clamp(1-stddev(series)/total, 0, 1)
	c = math.Max(minConfidence, c)
	return numeric.Round(c, 2)
}

func mean(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// stddev is the population standard deviation.
func stddev(series []float64) float64 {
	m := mean(series)
	var sq float64
	for _, v := range series {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(series)))
}
