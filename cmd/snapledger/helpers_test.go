package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/model"
)

func TestWriteResult(t *testing.T) {
	result := model.ExtractionResult{
		Source: model.SourceAI,
		Transaction: model.Transaction{
			Date:        "2026-08-12",
			Description: "Starbucks",
			Category:    "dining",
			Type:        model.DirectionDebit,
			Amount:      5.75,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "ai", out["source"])
	assert.NotContains(t, out, "degraded")

	txn, ok := out["transaction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Starbucks", txn["description"])
	assert.Equal(t, "dining", txn["category"])
	assert.Equal(t, "debit", txn["type"])
	assert.InDelta(t, 5.75, txn["amount"], 0.001)
}

func TestWriteResultDegraded(t *testing.T) {
	result := model.ExtractionResult{
		Source:   model.SourceRules,
		Degraded: true,
		Transaction: model.Transaction{
			Date:        "2026-08-29",
			Description: "Unknown Merchant",
			Category:    "Uncategorized",
			Type:        model.DirectionDebit,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "rules", out["source"])
	assert.Equal(t, true, out["degraded"])
}

func TestCollectTextFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.TXT", "skip.jpg", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o700))

	files, err := collectTextFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.TXT"),
		filepath.Join(dir, "b.txt"),
	}, files)
}

func TestCollectTextFilesMissingDir(t *testing.T) {
	_, err := collectTextFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
