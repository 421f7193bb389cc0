package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"outlay/internal/config"
	"outlay/internal/model"
	"outlay/internal/storage"
)

// initJournal opens the journal database named by the config, with
// auto-migration and proper path expansion.
func initJournal(ctx context.Context) (*storage.Journal, error) {
	// Get journal path from config
	dbPath := viper.GetString("journal.path")
	if dbPath == "" {
		dbPath = config.DefaultJournalPath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize journal
	journal, err := storage.NewJournal(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := journal.Migrate(ctx); err != nil {
		_ = journal.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return journal, nil
}

// activityListener logs every ledger notification at debug level.
type activityListener struct{}

// Update implements model.Listener.
func (*activityListener) Update(l *model.Ledger) {
	slog.Debug("Ledger changed",
		"transactions", len(l.Transactions()),
		"matched", len(l.MatchedFilterIndices()))
}

// loadLedger builds the in-memory ledger from the journal and registers the
// journal to receive every subsequent change. Seeding happens before
// registration so that replaying the stored sequence does not rewrite the
// journal once per transaction.
func loadLedger(ctx context.Context, journal *storage.Journal) (*model.Ledger, error) {
	txns, err := journal.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	ledger := model.NewLedger()
	for i := range txns {
		if err := ledger.AddTransaction(&txns[i]); err != nil {
			return nil, fmt.Errorf("failed to replay transaction at position %d: %w", i, err)
		}
	}

	if !ledger.Register(journal) {
		return nil, fmt.Errorf("failed to register journal listener")
	}
	ledger.Register(&activityListener{})

	return ledger, nil
}

// findTransaction scans the ledger's sequence for the first transaction with
// the given ID.
func findTransaction(ledger *model.Ledger, id string) (model.Transaction, bool) {
	for _, txn := range ledger.Transactions() {
		if txn.ID == id {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// parseDate parses a YYYY-MM-DD flag value.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return date, nil
}
