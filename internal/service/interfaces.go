// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/snapledger/snapledger/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    string
	Category  string
	Limit     int
	Offset    int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	SaveTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for persistence operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
