package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleTransaction() model.Transaction {
	return model.Transaction{
		UserID:      "user-1",
		Date:        "2025-09-19",
		Description: "Walmart",
		Amount:      45.67,
		Type:        model.DirectionDebit,
		Category:    "Groceries",
		Notes:       "weekly shop",
		ImageRef:    "receipts/abc123.jpg",
	}
}

func TestSaveAndGetTransaction(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	txn := sampleTransaction()
	saved, err := s.SaveTransaction(ctx, &txn)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID, "save must assign an identifier")
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.GetTransactionByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, saved.Date, got.Date)
	assert.Equal(t, saved.Description, got.Description)
	assert.InDelta(t, saved.Amount, got.Amount, 0.0001)
	assert.Equal(t, saved.Type, got.Type)
	assert.Equal(t, saved.Category, got.Category)
	assert.Equal(t, saved.Notes, got.Notes)
	assert.Equal(t, saved.ImageRef, got.ImageRef)
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetTransactionByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveTransactionRejectsMalformedValues(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Transaction)
		name   string
	}{
		{name: "missing user", mutate: func(txn *model.Transaction) { txn.UserID = "" }},
		{name: "missing description", mutate: func(txn *model.Transaction) { txn.Description = "" }},
		{name: "invalid type", mutate: func(txn *model.Transaction) { txn.Type = "outgoing" }},
		{name: "missing category", mutate: func(txn *model.Transaction) { txn.Category = "" }},
		{name: "negative amount", mutate: func(txn *model.Transaction) { txn.Amount = -1 }},
		{name: "malformed date", mutate: func(txn *model.Transaction) { txn.Date = "19/09/2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := sampleTransaction()
			tt.mutate(&txn)

			_, err := s.SaveTransaction(ctx, &txn)
			assert.Error(t, err)
		})
	}
}

func TestGetTransactionsFiltering(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, seed := range []struct {
		user     string
		date     string
		category string
	}{
		{"user-1", "2025-09-01", "Groceries"},
		{"user-1", "2025-09-15", "Dining"},
		{"user-2", "2025-09-20", "Groceries"},
	} {
		txn := sampleTransaction()
		txn.UserID = seed.user
		txn.Date = seed.date
		txn.Category = seed.category
		_, err := s.SaveTransaction(ctx, &txn)
		require.NoError(t, err)
	}

	byUser, err := s.GetTransactions(ctx, service.TransactionFilter{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
	assert.Equal(t, "2025-09-15", byUser[0].Date, "newest first")

	byCategory, err := s.GetTransactions(ctx, service.TransactionFilter{Category: "Groceries"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	start := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	byDate, err := s.GetTransactions(ctx, service.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	limited, err := s.GetTransactions(ctx, service.TransactionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}
