package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/andresuchdata/vendex/internal/domain"
)

// Decision thresholds. These are tuning knobs of the reorder policy.
const (
	highConfidence = 0.80
	midConfidence  = 0.60

	// safetyBuffer pads the forecast by 10% when computing target stock.
	safetyBuffer = 1.10

	// autoOrderCostLimit is the spend below which a confident reorder skips approval.
	autoOrderCostLimit = 1000.0
)

const (
	reasonSufficient      = "Stock levels sufficient for forecasted demand."
	reasonHighCost        = "High confidence but high cost. Needs manager signature."
	reasonModerate        = "Moderate confidence. Human oversight required."
	reasonLowConfidence   = "Low confidence. AI refuses to make a decision."
	reasonAutoOrderFormat = "High confidence (%s) and low risk."
)

// Decide maps a forecast and the current stock position to a reorder action.
//
// It never fails: confidence outside [0, 1] is not rejected here and simply
// falls into the lowest or highest band.
func Decide(forecast int, confidence float64, currentStock int, unitCost float64) domain.ReorderDecision {
	target := float64(forecast) * safetyBuffer
	reorderQty := target - float64(currentStock)

	if reorderQty <= 0 {
		return domain.ReorderDecision{Action: domain.ActionNone, Quantity: 0, Reason: reasonSufficient}
	}

	qty := int(math.Floor(reorderQty))
	totalCost := reorderQty * unitCost

	switch {
	case confidence >= highConfidence && totalCost < autoOrderCostLimit:
		return domain.ReorderDecision{
			Action:   domain.ActionAutoOrder,
			Quantity: qty,
			Reason:   fmt.Sprintf(reasonAutoOrderFormat, formatConfidence(confidence)),
		}
	case confidence >= highConfidence:
		return domain.ReorderDecision{Action: domain.ActionRequireApproval, Quantity: qty, Reason: reasonHighCost}
	case confidence >= midConfidence:
		return domain.ReorderDecision{Action: domain.ActionRequireApproval, Quantity: qty, Reason: reasonModerate}
	default:
		return domain.ReorderDecision{Action: domain.ActionFallbackToManual, Quantity: 0, Reason: reasonLowConfidence}
	}
}

// formatConfidence prints the shortest representation that round-trips,
// always keeping a decimal point (1 -> "1.0").
func formatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
