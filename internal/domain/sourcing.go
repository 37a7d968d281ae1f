package domain

// PaymentMode is how a buyer or manufacturer prefers to settle an order.
// Unknown modes are carried through as-is and simply never match.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "CASH"
	PaymentModeCredit       PaymentMode = "CREDIT"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeBankTransfer PaymentMode = "BANK_TRANSFER"
)

// SourcingItem is one line of a purchase order that needs a manufacturer.
type SourcingItem struct {
	SKU      string `json:"sku" binding:"required"`
	Quantity int    `json:"quantity" binding:"gt=0"`
}

// ProductOffer is a manufacturer's price and MOQ for a SKU.
type ProductOffer struct {
	SKU                  string  `json:"sku"`
	CostPrice            float64 `json:"costPrice"`
	MinimumOrderQuantity int     `json:"minimumOrderQuantity"`
}

// ManufacturerOffer describes a candidate manufacturer and its catalogue.
type ManufacturerOffer struct {
	ManufacturerID       int64          `json:"manufacturerId"`
	DistanceKm           float64        `json:"distanceKm"`
	AverageRating        float64        `json:"averageRating"`
	AdvanceRequired      bool           `json:"advanceRequired"`
	PreferredPaymentMode PaymentMode    `json:"preferredPaymentMode"`
	Products             []ProductOffer `json:"products"`
}

// SourcingContext holds buyer-side preferences for a sourcing request.
type SourcingContext struct {
	PurchaseOrderID      *int64      `json:"purchaseOrderId,omitempty"`
	PreferredPaymentMode PaymentMode `json:"preferredPaymentMode"`
	Confidence           *float64    `json:"confidence,omitempty"`
	CreatedAt            string      `json:"createdAt,omitempty"`
}

// SourcingRequest is the full input to the manufacturer recommender.
type SourcingRequest struct {
	Context       SourcingContext     `json:"context"`
	Items         []SourcingItem      `json:"items" binding:"required,min=1,dive"`
	Manufacturers []ManufacturerOffer `json:"manufacturers"`
}

// ScoredCandidate is a feasible manufacturer with its normalized subscores.
type ScoredCandidate struct {
	ManufacturerID  int64       `json:"manufacturerId"`
	TotalCost       float64     `json:"totalCost"`
	DistanceKm      float64     `json:"distanceKm"`
	AverageRating   float64     `json:"averageRating"`
	AdvanceRequired bool        `json:"advanceRequired"`
	PaymentMode     PaymentMode `json:"paymentMode"`
	CostScore       float64     `json:"costScore"`
	DistanceScore   float64     `json:"distanceScore"`
	RatingScore     float64     `json:"ratingScore"`
	AdvancePenalty  float64     `json:"advancePenalty"`
	PaymentScore    float64     `json:"paymentScore"`
	FinalScore      float64     `json:"finalScore"`
}

// Recommendation is the response shape returned to callers of the sourcing endpoint.
type Recommendation struct {
	RecommendedManufacturerID int64   `json:"recommendedManufacturerId"`
	Score                     float64 `json:"score"`
	TotalCost                 int64   `json:"totalCost"`
	Reasoning                 string  `json:"reasoning"`
}
