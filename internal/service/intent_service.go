package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/llm"
	"github.com/rs/zerolog/log"
)

const stockPlaceholder = "[[STOCK_JSON]]"

const retailEnginePrompt = `
You are the Vendex Intelligent Retail Engine. Your goal is to convert human intent into actionable retail "bundles" using the provided stock list.

CORE COMPETENCIES:
1. PROBLEM SOLVER: If a user mentions a problem (e.g., "I'm sick", "Leaking pipe"), identify the necessary products from the stock to solve it.
2. STOCK ANALYST: Compare the user's needs against this EXACT Stock List: [[STOCK_JSON]].
3. CLARITY GATEKEEPER: If a request is too vague to act upon (e.g., "I want to buy something"), you MUST set action to 'CLARIFY'.

RESPONSE RULES:
- If a specific SKU isn't found, look for the closest logical substitute.
- If no substitute exists, mark status as 'NOT_IN_STORE'.
- Always suggest quantities based on the context (e.g., "Pasta for 4" = 2 packs).
- Provide a 'reasoning' for every item you suggest.

OUTPUT FORMAT (Strict JSON):
{
  "action": "SUCCESS" | "CLARIFY" | "RECOMMEND",
  "intent_category": "PURCHASE" | "PROBLEM_SOLVING" | "GIFTING" | "INQUIRY",
  "message": "A personalized, professional response.",
  "clarifying_question": "String or null",
  "bundle": [
    {
      "sku": "SKU_ID",
      "quantity_recommended": 1,
      "available_stock": 10,
      "status": "AVAILABLE" | "OUT_OF_STOCK" | "SUBSTITUTE",
      "reasoning": "Why this item was chosen"
    }
  ],
  "confidence_score": 0.0 to 1.0
}
`

// IntentService turns free-text shopping requests into product bundles.
type IntentService struct {
	client      llm.Client
	temperature float32
	timeout     time.Duration
}

func NewIntentService(client llm.Client, temperature float32, timeout time.Duration) *IntentService {
	return &IntentService{client: client, temperature: temperature, timeout: timeout}
}

// ProcessIntent interprets userInput against the stock list. Any model failure
// is logged and answered with a clarifying fallback rather than an error.
func (s *IntentService) ProcessIntent(ctx context.Context, req domain.IntentRequest) domain.IntentResponse {
	resp, err := s.ask(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("intent: model call failed, using fallback")
		return FallbackIntentResponse()
	}
	return resp
}

func (s *IntentService) ask(ctx context.Context, req domain.IntentRequest) (domain.IntentResponse, error) {
	stock := req.StockList
	if stock == nil {
		stock = []domain.StockItem{}
	}
	stockJSON, err := json.Marshal(stock)
	if err != nil {
		return domain.IntentResponse{}, fmt.Errorf("encode stock list: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	temperature := s.temperature
	raw, err := s.client.CompleteJSON(ctx, llm.Request{
		System:      strings.Replace(retailEnginePrompt, stockPlaceholder, string(stockJSON), 1),
		User:        req.UserInput,
		Temperature: &temperature,
	})
	if err != nil {
		return domain.IntentResponse{}, err
	}

	var resp domain.IntentResponse
	if err := llm.DecodeJSON(raw, &resp); err != nil {
		return domain.IntentResponse{}, err
	}
	if resp.Action == "" {
		return domain.IntentResponse{}, fmt.Errorf("model response has no action")
	}
	if resp.Bundle == nil {
		resp.Bundle = []domain.BundleItem{}
	}
	return resp, nil
}

// FallbackIntentResponse is returned whenever the retail engine cannot answer.
func FallbackIntentResponse() domain.IntentResponse {
	question := "What product or need can I help you with?"
	return domain.IntentResponse{
		Action:             domain.IntentActionClarify,
		IntentCategory:     domain.IntentCategoryInquiry,
		Message:            "I'm having trouble processing that right now. Could you please clarify your request?",
		ClarifyingQuestion: &question,
		Bundle:             []domain.BundleItem{},
		ConfidenceScore:    0.0,
	}
}
