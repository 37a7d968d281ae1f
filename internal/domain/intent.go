package domain

// Intent actions returned by the retail engine.
const (
	IntentActionSuccess   = "SUCCESS"
	IntentActionClarify   = "CLARIFY"
	IntentActionRecommend = "RECOMMEND"
)

// Intent categories.
const (
	IntentCategoryPurchase       = "PURCHASE"
	IntentCategoryProblemSolving = "PROBLEM_SOLVING"
	IntentCategoryGifting        = "GIFTING"
	IntentCategoryInquiry        = "INQUIRY"
)

// Bundle item statuses.
const (
	BundleStatusAvailable  = "AVAILABLE"
	BundleStatusOutOfStock = "OUT_OF_STOCK"
	BundleStatusSubstitute = "SUBSTITUTE"
	BundleStatusNotInStore = "NOT_IN_STORE"
)

// StockItem is a SKU the store currently carries.
type StockItem struct {
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	OnHand int    `json:"onHand"`
}

// IntentRequest is a free-text shopping request plus the store's stock list.
type IntentRequest struct {
	UserInput string      `json:"user_input" binding:"required"`
	StockList []StockItem `json:"stock_list"`
}

// BundleItem is a product suggested for the customer's request.
type BundleItem struct {
	SKU                 string `json:"sku"`
	QuantityRecommended int    `json:"quantity_recommended"`
	AvailableStock      int    `json:"available_stock"`
	Status              string `json:"status"`
	Reasoning           string `json:"reasoning"`
}

// IntentResponse is the interpreted shopping intent.
type IntentResponse struct {
	Action             string       `json:"action"`
	IntentCategory     string       `json:"intent_category"`
	Message            string       `json:"message"`
	ClarifyingQuestion *string      `json:"clarifying_question"`
	Bundle             []BundleItem `json:"bundle"`
	ConfidenceScore    float64      `json:"confidence_score"`
}
