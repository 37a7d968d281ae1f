package roster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/llm"
)

const staffingPrompt = `
You are the Vendex Staffing Coordinator Agent.

TASK:
Assign the most suitable staff member to each shift provided in the input.

RULES:
1. Skill Match: Prioritize staff who have the 'requiredSkill'.
2. Availability: Only assign staff if the shift time falls within their 'availability' window for that specific day.
3. Overtime: Avoid assigning staff if their 'hoursWorkedThisWeek' + shift duration exceeds 40 hours.
4. Optimization: Try to fill as many shifts as possible.

CONFIDENCE SCORE:
- 0.9-1.0: Perfect Skill + Perfect Time match.
- 0.7-0.8: Skill match but staff has high weekly hours.
- 0.5-0.6: Substitute skill match (e.g., Billing for Customer Support).
- 0.0: No possible match found.

RESPONSE FORMAT (Strict JSON):
{
  "assignments": [
    { "shiftId": 1, "staffId": 101, "confidence": 0.95 }
  ],
  "coveragePercentage": 100.0,
  "overtimeRisk": false
}
`

// LLMProvider asks the language model for an assignment plan.
type LLMProvider struct {
	client llm.Client
}

func NewLLMProvider(client llm.Client) *LLMProvider {
	return &LLMProvider{client: client}
}

func (p *LLMProvider) Generate(ctx context.Context, input domain.RosterInput) (domain.RosterDecision, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return domain.RosterDecision{}, fmt.Errorf("encode roster input: %w", err)
	}

	raw, err := p.client.CompleteJSON(ctx, llm.Request{System: staffingPrompt, User: string(payload)})
	if err != nil {
		return domain.RosterDecision{}, fmt.Errorf("staffing agent: %w", err)
	}

	var decision domain.RosterDecision
	if err := llm.DecodeJSON(raw, &decision); err != nil {
		return domain.RosterDecision{}, fmt.Errorf("staffing agent: %w", err)
	}
	if err := checkDecision(input, decision); err != nil {
		return domain.RosterDecision{}, fmt.Errorf("staffing agent: %w", err)
	}
	if decision.Assignments == nil {
		decision.Assignments = []domain.ShiftAssignment{}
	}
	return decision, nil
}

// checkDecision rejects plans that reference shifts or staff that were not in the input.
func checkDecision(input domain.RosterInput, decision domain.RosterDecision) error {
	shifts := make(map[int64]struct{}, len(input.Shifts))
	for _, s := range input.Shifts {
		shifts[s.ShiftID] = struct{}{}
	}
	staff := make(map[int64]struct{}, len(input.Staff))
	for _, s := range input.Staff {
		staff[s.StaffID] = struct{}{}
	}

	for _, a := range decision.Assignments {
		if _, ok := shifts[a.ShiftID]; !ok {
			return fmt.Errorf("unknown shift %d in plan", a.ShiftID)
		}
		if _, ok := staff[a.StaffID]; !ok {
			return fmt.Errorf("unknown staff %d in plan", a.StaffID)
		}
	}
	return nil
}
