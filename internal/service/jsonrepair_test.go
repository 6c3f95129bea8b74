package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONResponse_Valid(t *testing.T) {
	var out struct {
		Reasoning string `json:"reasoning"`
	}
	err := parseJSONResponse(`{"reasoning": "fine"}`, &out, "reasoning")

	require.NoError(t, err)
	assert.Equal(t, "fine", out.Reasoning)
}

func TestParseJSONResponse_RepairsRaggedField(t *testing.T) {
	// A raw newline inside the string literal makes the first parse fail.
	raw := "{\"reasoning\": \"these images\n   fit the\ttopic\"}"

	var out struct {
		Reasoning string `json:"reasoning"`
	}
	err := parseJSONResponse(raw, &out, "reasoning")

	require.NoError(t, err)
	assert.Equal(t, "these images fit the topic", out.Reasoning)
}

func TestParseJSONResponse_SecondFailureIsFinal(t *testing.T) {
	var out map[string]any
	err := parseJSONResponse(`{"reasoning": broken`, &out, "reasoning")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParseJSONResponse_StripsFence(t *testing.T) {
	var out struct {
		Content string `json:"content"`
	}
	err := parseJSONResponse("```json\n{\"content\": \"hi\"}\n```", &out, "content")

	require.NoError(t, err)
	assert.Equal(t, "hi", out.Content)
}
