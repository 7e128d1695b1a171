package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/llm"
	"github.com/snapledger/snapledger/internal/model"
)

// scriptedBackend answers every completion with a fixed body, standing in
// for a deterministic generation backend.
type scriptedBackend struct {
	body string
}

func (s *scriptedBackend) Complete(_ context.Context, _ llm.Request) (string, error) {
	return s.body, nil
}

// TestFewShotRoundTrip feeds each canonical example input through the real
// extractor and orchestrator, with the backend faithfully echoing the
// example output, and checks the canonical record matches the example.
func TestFewShotRoundTrip(t *testing.T) {
	for _, ex := range llm.FewShotExamples() {
		var want struct {
			Date        *string  `json:"date"`
			Type        string   `json:"type"`
			Category    string   `json:"category"`
			SubCategory *string  `json:"sub_category"`
			Amount      float64  `json:"amount"`
			Note        *string  `json:"note"`
		}
		require.NoError(t, json.Unmarshal([]byte(ex.Output), &want))

		extractor := llm.NewExtractorWithClient(&scriptedBackend{body: ex.Output}, llm.Config{}, nil)
		e := New(extractor, nil)

		result, err := e.Extract(context.Background(), ex.Input)
		require.NoError(t, err)
		extractor.Close()

		assert.Equal(t, model.SourceAI, result.Source)
		assert.Equal(t, want.Category, result.Transaction.Category)
		assert.InDelta(t, want.Amount, result.Transaction.Amount, 0.0001)

		if want.Date != nil {
			assert.Equal(t, *want.Date, result.Transaction.Date)
		}
		if want.SubCategory != nil {
			assert.Equal(t, *want.SubCategory, result.Transaction.Description)
		}
		if want.Note != nil {
			assert.Equal(t, *want.Note, result.Transaction.Notes)
		}

		wantDirection := model.DirectionDebit
		if want.Type == "in" {
			wantDirection = model.DirectionCredit
		}
		assert.Equal(t, wantDirection, result.Transaction.Type)
	}
}

// TestMalformedBackendResponsesFallBack drives the real extractor with
// broken backend output and verifies the orchestrator still produces a
// valid canonical record via the rule-based path.
func TestMalformedBackendResponsesFallBack(t *testing.T) {
	responses := []string{
		`{"date":"2025-09-19","type":"out"`,                                                            // truncated
		`{"date":null,"type":"out","category":"Fine Dining","sub_category":null,"amount":5,"note":null}`, // bad category
		`{"date":null,"type":"out","category":"dining","sub_category":null,"amount":-5,"note":null}`,      // negative amount
		"no json here at all",
	}

	text := "Walmart\nFri, Sep 19, 2025\nTotal $45.67"

	for _, body := range responses {
		extractor := llm.NewExtractorWithClient(&scriptedBackend{body: body}, llm.Config{}, nil)
		e := New(extractor, nil)

		result, err := e.Extract(context.Background(), text)
		extractor.Close()
		require.NoError(t, err, body)

		assert.Equal(t, model.SourceRules, result.Source, body)
		assert.Equal(t, "Walmart", result.Transaction.Description)
		assert.InDelta(t, 45.67, result.Transaction.Amount, 0.0001)
		assert.True(t, result.Transaction.Type.Valid())
	}
}
