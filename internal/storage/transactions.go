package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/model"
	"github.com/snapledger/snapledger/internal/service"
)

// SaveTransaction persists a canonical transaction, assigning an identifier
// if none is set. Field validation runs here as a second line of defense;
// malformed category or type values are rejected before touching the table.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	if txn == nil {
		return nil, fmt.Errorf("transaction cannot be nil")
	}
	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	saved := *txn
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, user_id, date, description, amount, type, category, notes, image_ref, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		saved.ID, saved.UserID, saved.Date, saved.Description, saved.Amount,
		string(saved.Type), saved.Category, saved.Notes, saved.ImageRef, saved.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, fmt.Errorf("saving transaction %s: %w", saved.ID, common.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &saved, nil
}

// GetTransactionByID fetches a single transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, description, amount, type, category, notes, image_ref, created_at
		FROM transactions WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// GetTransactions returns transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, date, description, amount, type, category, notes, image_ref, created_at
		FROM transactions WHERE 1=1
	`
	var args []any

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format("2006-01-02"))
	}

	query += " ORDER BY date DESC, created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var txnType string
	var notes, imageRef sql.NullString

	err := row.Scan(&txn.ID, &txn.UserID, &txn.Date, &txn.Description, &txn.Amount,
		&txnType, &txn.Category, &notes, &imageRef, &txn.CreatedAt)
	if err != nil {
		return nil, err
	}

	txn.Type = model.Direction(txnType)
	txn.Notes = notes.String
	txn.ImageRef = imageRef.String
	return &txn, nil
}
