package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type reply struct {
		Action string  `json:"action"`
		Score  float64 `json:"score"`
	}

	tests := []struct {
		name    string
		input   string
		want    reply
		wantErr bool
	}{
		{name: "plain json", input: `{"action":"SUCCESS","score":0.9}`, want: reply{"SUCCESS", 0.9}},
		{name: "json fence", input: "```json\n{\"action\":\"CLARIFY\",\"score\":0.1}\n```", want: reply{"CLARIFY", 0.1}},
		{name: "bare fence", input: "```\n{\"action\":\"RECOMMEND\"}\n```", want: reply{Action: "RECOMMEND"}},
		{name: "surrounding whitespace", input: "  \n{\"score\":1}\n ", want: reply{Score: 1}},
		{name: "empty", input: "   ", wantErr: true},
		{name: "not json", input: "sorry, I cannot help", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got reply
			err := DecodeJSON(tt.input, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClientWithoutKey(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	require.NoError(t, err)

	_, err = client.CompleteJSON(context.Background(), Request{User: "hello"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
