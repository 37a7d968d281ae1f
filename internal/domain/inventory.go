package domain

// ReorderAction is the discrete outcome of the reorder decision engine.
type ReorderAction string

const (
	ActionNone             ReorderAction = "NONE"
	ActionAutoOrder        ReorderAction = "AUTO_ORDER"
	ActionRequireApproval  ReorderAction = "REQUIRE_APPROVAL"
	ActionFallbackToManual ReorderAction = "FALLBACK_TO_MANUAL"
)

// ForecastResult is the projected demand for the next seven periods
type ForecastResult struct {
	Total      int     `json:"forecast"`
	Confidence float64 `json:"confidence"`
}

// ReorderDecision is what the inventory agent recommends doing about a SKU.
type ReorderDecision struct {
	Action   ReorderAction `json:"action"`
	Quantity int           `json:"quantity"`
	Reason   string        `json:"reason"`
}

// ForecastAndDecision bundles a forecast with the decision derived from it.
type ForecastAndDecision struct {
	Forecast   int             `json:"forecast"`
	Confidence float64         `json:"confidence"`
	Decision   ReorderDecision `json:"decision"`
}

// ReorderRequest carries everything needed to forecast and decide for one SKU.
type ReorderRequest struct {
	SKU          string    `json:"sku"`
	SalesHistory []float64 `json:"sales_history"`
	CurrentStock int       `json:"current_stock"`
	UnitCost     float64   `json:"unit_cost"`
}

// ReorderResult is a per-SKU row of a bulk forecast-and-decide run.
// Error is set instead of Result when the SKU could not be forecast.
type ReorderResult struct {
	SKU    string               `json:"sku"`
	Result *ForecastAndDecision `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}
