// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Direction indicates whether a transaction moves money in or out.
type Direction string

// Persisted direction vocabulary.
const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Valid reports whether d is one of the persisted direction values.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Transaction is the canonical record persisted regardless of which
// extraction path produced it.
type Transaction struct {
	CreatedAt   time.Time
	ID          string
	UserID      string
	Date        string // YYYY-MM-DD
	Description string
	Category    string
	Notes       string
	ImageRef    string // optional reference to the source image
	Type        Direction
	Amount      float64
}

// GenerateHash creates a stable hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date,
		t.Amount,
		t.Description,
		t.UserID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
