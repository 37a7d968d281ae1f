package roster

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply string
	err   error
	got   llm.Request
}

func (s *stubClient) CompleteJSON(_ context.Context, req llm.Request) (string, error) {
	s.got = req
	return s.reply, s.err
}

func rosterInput() domain.RosterInput {
	return domain.RosterInput{
		Date: monday,
		Shifts: []domain.Shift{
			{ShiftID: 1, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "CASHIER"},
		},
		Staff: []domain.Staff{{StaffID: 101, Skills: []string{"CASHIER"}}},
	}
}

func TestLLMProviderGenerate(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"assignments\":[{\"shiftId\":1,\"staffId\":101,\"confidence\":0.95}],\"coveragePercentage\":100.0,\"overtimeRisk\":false}\n```"}
	p := NewLLMProvider(client)

	got, err := p.Generate(context.Background(), rosterInput())
	require.NoError(t, err)
	assert.Equal(t, []domain.ShiftAssignment{{ShiftID: 1, StaffID: 101, Confidence: 0.95}}, got.Assignments)
	assert.Equal(t, 100.0, got.CoveragePercentage)

	assert.Contains(t, client.got.System, "Staffing Coordinator")
	var sent domain.RosterInput
	require.NoError(t, json.Unmarshal([]byte(client.got.User), &sent))
	assert.Equal(t, rosterInput(), sent)
}

func TestLLMProviderErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
	}{
		{"transport error", &stubClient{err: errors.New("boom")}},
		{"not configured", &stubClient{err: llm.ErrNotConfigured}},
		{"garbage reply", &stubClient{reply: "no json here"}},
		{"unknown staff", &stubClient{reply: `{"assignments":[{"shiftId":1,"staffId":999,"confidence":0.9}]}`}},
		{"unknown shift", &stubClient{reply: `{"assignments":[{"shiftId":7,"staffId":101,"confidence":0.9}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLLMProvider(tt.client).Generate(context.Background(), rosterInput())
			assert.Error(t, err)
		})
	}
}

func TestLLMProviderEmptyPlan(t *testing.T) {
	p := NewLLMProvider(&stubClient{reply: `{"coveragePercentage":0,"overtimeRisk":true}`})
	got, err := p.Generate(context.Background(), rosterInput())
	require.NoError(t, err)
	assert.NotNil(t, got.Assignments)
	assert.Empty(t, got.Assignments)
	assert.True(t, got.OvertimeRisk)
}
