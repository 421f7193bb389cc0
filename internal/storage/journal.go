package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"outlay/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Journal mirrors a ledger's transaction sequence in SQLite. Load seeds a
// ledger at startup; registered as a model.Listener, the journal rewrites its
// copy after every change. Matched filter indices are transient and are never
// persisted.
type Journal struct {
	db     *sql.DB
	dbPath string
}

// NewJournal opens the journal database at dbPath, creating the file and its
// parent directory if needed. Call Migrate before first use.
func NewJournal(dbPath string) (*Journal, error) {
	// Validate input
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping journal: %w", err)
	}

	return &Journal{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Load returns the stored transaction sequence in its original insertion
// order. A fresh journal yields an empty, non-nil slice.
func (j *Journal) Load(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, date, note, category, amount
		FROM transactions
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	txns := make([]model.Transaction, 0)
	for rows.Next() {
		var txn model.Transaction
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Note, &txn.Category, &txn.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

// SaveSnapshot replaces the stored sequence with txns in a single database
// transaction, preserving slice order as the position column.
func (j *Journal) SaveSnapshot(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (position, id, date, note, category, amount)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, txn := range txns {
		if _, err := stmt.ExecContext(ctx, i, txn.ID, txn.Date, txn.Note, txn.Category, txn.Amount); err != nil {
			return fmt.Errorf("failed to insert transaction at position %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// Update implements model.Listener by persisting the ledger's current
// sequence. Failures are logged rather than returned: the notification pass
// is synchronous and unguarded, and a persistence hiccup must not disturb
// the in-memory state or the listeners behind this one.
func (j *Journal) Update(l *model.Ledger) {
	if err := j.SaveSnapshot(context.Background(), l.Transactions()); err != nil {
		slog.Error("Failed to persist ledger snapshot",
			"error", err,
			"path", j.dbPath)
	}
}
